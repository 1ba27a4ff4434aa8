package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// 各handlerが満たす
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func RegisterRoutes(e *echo.Echo, registrars ...RouteRegistrar) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	for _, r := range registrars {
		r.RegisterRoutes(e)
	}
}
