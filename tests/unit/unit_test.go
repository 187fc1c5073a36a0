package unit

import (
	"context"
	"strings"
	"testing"
	"time"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	inventory  repo.InventoryRepository
	products   repo.ProductRepository
	summaries  repo.SummaryRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *TxReposMock) Summaries() repo.SummaryRepository    { return r.summaries }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *OrderRepoMock) UpdateTotal(ctx context.Context, orderID int64, total float64) error {
	args := m.Called(ctx, orderID, total)
	return args.Error(0)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListDetailByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	details, _ := args.Get(0).([]repo.OrderItemDetail)
	return details, args.Error(1)
}

func (m *OrderItemRepoMock) SumLineTotals(ctx context.Context, orderID int64) (float64, error) {
	args := m.Called(ctx, orderID)
	sum, _ := args.Get(0).(float64)
	return sum, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecrementStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListLowStock(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) TopProductsByRevenue(ctx context.Context, since time.Time, limit int) ([]repo.ProductRevenueRow, error) {
	args := m.Called(ctx, since, limit)
	rows, _ := args.Get(0).([]repo.ProductRevenueRow)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) DailySales(ctx context.Context, since time.Time) ([]repo.DailySalesRow, error) {
	args := m.Called(ctx, since)
	rows, _ := args.Get(0).([]repo.DailySalesRow)
	return rows, args.Error(1)
}

func (m *ReportRepoMock) WindowSummary(ctx context.Context, since time.Time) (repo.WindowSummaryRow, error) {
	args := m.Called(ctx, since)
	row, _ := args.Get(0).(repo.WindowSummaryRow)
	return row, args.Error(1)
}

func (m *ReportRepoMock) OrderTotalMismatches(ctx context.Context, tolerance float64) ([]repo.OrderTotalMismatch, error) {
	args := m.Called(ctx, tolerance)
	rows, _ := args.Get(0).([]repo.OrderTotalMismatch)
	return rows, args.Error(1)
}

type SummaryRepoMock struct{ mock.Mock }

func (m *SummaryRepoMock) RefreshWindow(ctx context.Context, since time.Time) error {
	args := m.Called(ctx, since)
	return args.Error(0)
}

// =====================
// Helper: error contains（エラー型の実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
