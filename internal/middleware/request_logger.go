package middleware

import (
	"quickmart/internal/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 1リクエスト1行でログを出す
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			}
			if sid, ok := c.Get(CtxSessionIDKey).(string); ok {
				kv = append(kv, "session_id", sid)
			}
			if v.Error != nil {
				log.Error("request failed", append(kv, "error", v.Error.Error())...)
				return nil
			}
			log.Info("request", kv...)
			return nil
		},
	})
}
