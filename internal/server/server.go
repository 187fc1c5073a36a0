package server

import (
	"shoplite/internal/config"
	"shoplite/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
	Tools   *handler.ToolsHandler
}

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	//フロント（GitHub Pages等）から叩くのでCORSを開ける
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	RegisterRoutes(e, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
