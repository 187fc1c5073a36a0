package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CustomerInput struct {
	Name    string
	Email   string
	Address string
	City    string
	State   string
	Zip     string
}

type CartLineInput struct {
	ProductID int64
	Quantity  int64
	Price     float64
}

type PlaceOrderInput struct {
	Customer CustomerInput
	Items    []CartLineInput
}

type OrderItemOutput struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type OrderOutput struct {
	ID              int64     `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerAddress string    `json:"customer_address"`
	CustomerCity    string    `json:"customer_city"`
	CustomerState   string    `json:"customer_state"`
	CustomerZip     string    `json:"customer_zip"`
	TotalAmount     float64   `json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderDetailOutput struct {
	Order OrderOutput       `json:"order"`
	Items []OrderItemOutput `json:"items"`
}

// 注文確定。ヘッダ作成→在庫減算→明細作成→合計更新を1トランザクションで行う。
// 途中で失敗したら全部巻き戻す（部分的な注文は残さない）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (int64, error) {
	if len(in.Items) == 0 {
		return 0, NewValidationError("Cart is empty")
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		return 0, NewValidationError("Missing customer name")
	}
	for i, line := range in.Items {
		if line.ProductID <= 0 {
			return 0, NewValidationError(fmt.Sprintf("item %d: invalid product_id", i+1))
		}
		if line.Quantity <= 0 {
			return 0, NewValidationError(fmt.Sprintf("item %d: quantity must be > 0", i+1))
		}
		if line.Price < 0 {
			return 0, NewValidationError(fmt.Sprintf("item %d: price must be >= 0", i+1))
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//合計は明細確定後に入れるので、まず0で作る
		id, err := r.Orders().Create(ctx, model.Order{
			CustomerName:    strings.TrimSpace(in.Customer.Name),
			CustomerEmail:   in.Customer.Email,
			CustomerAddress: in.Customer.Address,
			CustomerCity:    in.Customer.City,
			CustomerState:   in.Customer.State,
			CustomerZip:     in.Customer.Zip,
			TotalAmount:     0,
		})
		if err != nil {
			return err
		}

		//在庫を先に引く。商品が存在しなければここで止まる
		for _, line := range in.Items {
			if err := r.Inventory().DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewValidationError(fmt.Sprintf("unknown product id %d", line.ProductID))
				}
				return err
			}
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		var total float64
		for _, line := range in.Items {
			lineTotal := float64(line.Quantity) * line.Price
			total += lineTotal
			items = append(items, model.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.Price,
				LineTotal: lineTotal,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return err
		}

		if err := r.Orders().UpdateTotal(ctx, id, total); err != nil {
			return err
		}

		orderID = id
		return nil
	})

	if err != nil {
		if _, ok := AsValidationError(err); ok {
			return 0, err
		}
		return 0, NewPersistenceError(err)
	}

	return orderID, nil
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewValidationError("invalid order id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFoundError("order")
		}
		if err != nil {
			return err
		}

		details, err := r.OrderItems().ListDetailByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		out = toOrderDetailOutput(o, details)
		return nil
	})

	if err != nil {
		if _, ok := AsNotFoundError(err); ok {
			return OrderDetailOutput{}, err
		}
		if _, ok := AsValidationError(err); ok {
			return OrderDetailOutput{}, err
		}
		return OrderDetailOutput{}, NewPersistenceError(err)
	}

	return out, nil
}

func toOrderDetailOutput(o model.Order, details []repo.OrderItemDetail) OrderDetailOutput {
	items := make([]OrderItemOutput, 0, len(details))
	for _, d := range details {
		items = append(items, OrderItemOutput{
			ProductID: d.ProductID,
			Name:      d.ProductName,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			LineTotal: d.LineTotal,
		})
	}

	return OrderDetailOutput{
		Order: OrderOutput{
			ID:              o.ID,
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			CustomerAddress: o.CustomerAddress,
			CustomerCity:    o.CustomerCity,
			CustomerState:   o.CustomerState,
			CustomerZip:     o.CustomerZip,
			TotalAmount:     o.TotalAmount,
			CreatedAt:       o.CreatedAt,
		},
		Items: items,
	}
}
