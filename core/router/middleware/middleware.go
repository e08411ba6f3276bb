package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"meditrack/core/logger"
	"meditrack/core/router"

	"github.com/google/uuid"
)

// Recovery converts panics into 500 responses instead of crashing the server
func Recovery(log logger.Logger) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic recovered",
						logger.Any("panic", r),
						logger.String("path", c.Request.URL.Path),
						logger.String("stack", string(debug.Stack())))
					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "Internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}

// RequestID tags every request with a unique id for log correlation
func RequestID() router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			id := c.Request.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("request_id", id)
			c.Writer.Header().Set("X-Request-ID", id)
			return next(c)
		}
	}
}

// RequestLogger logs one line per request with status and duration
func RequestLogger(log logger.Logger) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			start := time.Now()
			err := next(c)

			log.Info("Request",
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.String("ip", c.ClientIP()))
			return err
		}
	}
}

// CORSMiddleware allows cross-origin requests from the configured origins
func CORSMiddleware(allowedOrigins []string) router.Middleware {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := len(allowedOrigins) == 0
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			origin := c.Request.Header.Get("Origin")
			if origin != "" && (allowAll || allowed[origin]) {
				header := c.Writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Api-Key, X-Request-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
			}

			if c.Request.Method == http.MethodOptions {
				c.Status(http.StatusNoContent)
				return nil
			}

			return next(c)
		}
	}
}
