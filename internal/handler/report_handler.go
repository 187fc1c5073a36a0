package handler

import (
	"net/http"
	"strconv"

	"shoplite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/reports")
	g.GET("/top-products", h.topProducts)
	g.GET("/daily-sales", h.dailySales)
	g.GET("/low-stock", h.lowStock)
	g.GET("/summary", h.summary)
}

// days系クエリの読み取り（未指定はdefault、壊れていればエラー）
func queryDays(c echo.Context, def int) (int, bool) {
	v := c.QueryParam("days")
	if v == "" {
		return def, true
	}
	d, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

func (h *ReportHandler) topProducts(c echo.Context) error {
	days, ok := queryDays(c, usecase.DefaultTopProductsDays)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
	}

	limit := usecase.DefaultTopProductsLimit
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.TopProducts(c.Request().Context(), usecase.TopProductsInput{
		Days:  days,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) dailySales(c echo.Context) error {
	days, ok := queryDays(c, usecase.DefaultDailySalesDays)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
	}

	out, err := h.uc.DailySales(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) lowStock(c echo.Context) error {
	out, err := h.uc.LowStock(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) summary(c echo.Context) error {
	days, ok := queryDays(c, usecase.DefaultSummaryDays)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
	}

	out, err := h.uc.WindowSummary(c.Request().Context(), days)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
