package middleware

import (
	"github.com/google/uuid"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"net/http"
)

const RequestIDHeader = "X-Request-ID"

// LoggerContext puts the request description on the context so every log
// line of the request carries it. A request id sent by the client is kept,
// otherwise a new one is generated and echoed back.
type LoggerContext struct{}

func NewLoggerContext() *LoggerContext {
	return &LoggerContext{}
}

func (lc *LoggerContext) CreateHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)
		r = r.WithContext(
			logging.WithContextFields(
				r.Context(),
				zap.String("request-id", requestID),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("remote-addr", r.RemoteAddr),
			),
		)
		next.ServeHTTP(w, r)
	})
}
