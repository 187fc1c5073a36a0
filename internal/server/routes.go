package server

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Report.RegisterRoutes(e)
	h.Tools.RegisterRoutes(e)
}
