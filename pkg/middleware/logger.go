package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger emits one structured log line per request. Client errors log
// at warn so moderation rejections and stale-state conflicts stay visible
// without paging anyone.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			defer func() {
				status := ww.Status()

				attrs := []any{
					slog.Group("request",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("remote_addr", r.RemoteAddr),
						slog.String("request_id", middleware.GetReqID(r.Context())),
					),
					slog.Group("response",
						slog.Int("status", status),
						slog.Int("bytes", ww.BytesWritten()),
						slog.String("latency", time.Since(start).String()),
					),
				}

				switch {
				case status >= 500:
					logger.Error("server error", attrs...)
				case status >= 400:
					logger.Warn("request rejected", attrs...)
				default:
					logger.Info("request completed", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
