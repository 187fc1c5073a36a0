package handler

import (
	"fmt"
	"net/http"

	"shoplite/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ToolsHandler struct {
	uc *usecase.ToolsUsecase
}

func NewToolsHandler(uc *usecase.ToolsUsecase) *ToolsHandler {
	return &ToolsHandler{uc: uc}
}

func (h *ToolsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/tools")
	g.POST("/recompute-order-totals", h.recomputeTotals)
	g.POST("/refresh-90day-summary", h.refreshSummary)
	g.GET("/check-order-totals", h.checkTotals)
}

type RecomputeResponse struct {
	Message   string `json:"message"`
	Processed int    `json:"processed"`
	Corrected int    `json:"corrected"`
}

type RefreshSummaryRequest struct {
	Days int `json:"days"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *ToolsHandler) recomputeTotals(c echo.Context) error {
	out, err := h.uc.RecomputeOrderTotals(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, RecomputeResponse{
		Message:   fmt.Sprintf("Order totals recomputed: %d processed, %d corrected.", out.Processed, out.Corrected),
		Processed: out.Processed,
		Corrected: out.Corrected,
	})
}

func (h *ToolsHandler) refreshSummary(c echo.Context) error {
	//bodyは任意。省略時は90日。
	days := usecase.DefaultSummaryDays
	var req RefreshSummaryRequest
	if err := c.Bind(&req); err == nil && req.Days > 0 {
		days = req.Days
	}

	if err := h.uc.RefreshDailySummary(c.Request().Context(), days); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("%d-day summary refreshed.", days),
	})
}

func (h *ToolsHandler) checkTotals(c echo.Context) error {
	out, err := h.uc.CheckOrderTotals(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
