package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

// BASE_URL未設定ならスキップ（e2eは起動済みサーバー前提）
func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; e2e tests need a running server")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int64   `json:"stock_quantity"`
	ReorderLevel  int64   `json:"reorder_level"`
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type OrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderCreateRequest struct {
	Customer Customer    `json:"customer"`
	Items    []OrderLine `json:"items"`
}

type OrderCreateResponse struct {
	OrderID int64 `json:"order_id"`
}

type OrderDetail struct {
	Order struct {
		ID           int64   `json:"id"`
		CustomerName string  `json:"customer_name"`
		TotalAmount  float64 `json:"total_amount"`
		CreatedAt    string  `json:"created_at"`
	} `json:"order"`
	Items []struct {
		ProductID int64   `json:"product_id"`
		Name      string  `json:"name"`
		Quantity  int64   `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
		LineTotal float64 `json:"line_total"`
	} `json:"items"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProducts(t *testing.T, body []byte) []Product {
	t.Helper()
	var v []Product
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal([]Product) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeProduct(t *testing.T, body []byte) Product {
	t.Helper()
	var v Product
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(Product) failed: %v body=%s", err, string(body))
	}
	return v
}

// カタログの先頭商品を返す。空ならスキップ。
func firstProduct(t *testing.T, c *TestClient, ctx context.Context) Product {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/products", nil)
	requireStatus(t, resp, http.StatusOK, body)

	products := mustDecodeProducts(t, body)
	if len(products) == 0 {
		t.Skip("catalog is empty; seed products before running order e2e tests")
	}
	return products[0]
}
