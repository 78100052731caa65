package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/payportal/go-selfservice/internal/common/log"
	"github.com/payportal/go-selfservice/internal/config"
)

const CorrelationIDHeader = "X-Correlation-Id"

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{conf: conf}
}

// Context propagates the caller's correlation id (or mints one) into the
// request context and echoes it back on the response.
func (m AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := log.SetCorrelationID(req.Context(), req.Header.Get(CorrelationIDHeader))
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(CorrelationIDHeader, log.GetCorrelationID(ctx))
			return next(c)
		}
	}
}

// Logger emits one structured line per request.
func (m AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			ctx := c.Request().Context()
			fields := []log.Field{
				log.String("method", c.Request().Method),
				log.String("path", c.Request().URL.Path),
				log.Int("status", c.Response().Status),
				log.String("latency", time.Since(start).String()),
			}
			if err != nil {
				fields = append(fields, log.Err(err))
				log.Warn(ctx, "[HTTP]", fields...)
				return err
			}

			log.Info(ctx, "[HTTP]", fields...)
			return nil
		}
	}
}
