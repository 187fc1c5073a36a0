package handler

import (
	"net/http"
	"strconv"

	"shoplite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type OrderLineRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderCreateRequest struct {
	Customer CustomerRequest    `json:"customer"`
	Items    []OrderLineRequest `json:"items"`
}

type OrderCreateResponse struct {
	OrderID int64 `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", h.create)
	e.GET("/order/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	lines := make([]usecase.CartLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, usecase.CartLineInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Customer: usecase.CustomerInput{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
			City:    req.Customer.City,
			State:   req.Customer.State,
			Zip:     req.Customer.Zip,
		},
		Items: lines,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{OrderID: orderID})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrderDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
