package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/central-brain/pkg/logger"
)

// RequestIDHeader é o cabeçalho usado para correlacionar requisições
const RequestIDHeader = "X-Request-ID"

const loggerKey = "logger"

// LoggerFrom retorna o logger da requisição, com o request_id anexado
func LoggerFrom(c *gin.Context, fallback logger.Logger) logger.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(logger.Logger); ok {
			return log
		}
	}
	return fallback
}

// RequestLogger registra cada requisição e propaga o X-Request-ID
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		reqLog := logger.With(log, "request_id", requestID)
		c.Set("request_id", requestID)
		c.Set(loggerKey, reqLog)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		args := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			reqLog.Error("Requisição com erro", args...)
		case c.Writer.Status() >= 400:
			reqLog.Warn("Requisição rejeitada", args...)
		default:
			reqLog.Info("Requisição", args...)
		}
	}
}
