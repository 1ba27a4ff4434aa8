package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	SessionHeader   = "X-Session-ID"
	CtxSessionIDKey = "session_id" // string
)

// セッションIDをcontextへ保存する。
// ヘッダが無ければ新しく発行し、レスポンスヘッダで返す。
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
			if sid == "" || len(sid) > 128 {
				sid = uuid.NewString()
			}

			c.Response().Header().Set(SessionHeader, sid)
			c.Set(CtxSessionIDKey, sid)

			return next(c)
		}
	}
}
