package delivery

import (
	"bytes"

	"github.com/Rapter1990/footballteamapi/internal/logging/domain"
	"github.com/Rapter1990/footballteamapi/internal/logging/usecase"
	"github.com/Rapter1990/footballteamapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bodyCaptureWriter tees the response body so the middleware can persist a
// snapshot of what was sent.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// RequestLoggingMiddleware records every handled request into the log store.
// A failure to persist the log is reported to the app logger and never fails
// the request itself.
func RequestLoggingMiddleware(logUsecase usecase.LogUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		writer := &bodyCaptureWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		entry := &domain.LogEntry{
			Endpoint:  c.Request.URL.String(),
			Method:    c.Request.Method,
			Status:    writer.Status(),
			UserInfo:  c.GetString("userEmail"),
			Operation: c.FullPath(),
			Response:  writer.body.String(),
			Message:   writer.body.String(),
		}
		if len(c.Errors) > 0 {
			entry.ErrorType = c.Errors.Last().Error()
			entry.Message = c.Errors.Last().Error()
		}

		if err := logUsecase.SaveLog(c.Request.Context(), entry); err != nil {
			logger.Error("failed to persist request log", err,
				zap.String("endpoint", entry.Endpoint),
				zap.String("method", entry.Method),
			)
		}
	}
}
