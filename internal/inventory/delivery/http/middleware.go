package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adilbekov/stockledger/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns a request ID when the client did not send
// one and echoes it back on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(requestIDHeader, requestID)
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs every request with its status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		logger.Info(r.Context()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get(requestIDHeader)).
			Int("status", rw.statusCode).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
