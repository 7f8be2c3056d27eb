package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type accessKey struct{}

// access is filled in by inner middleware so the request log line can carry
// what they learned about the caller.
type access struct {
	subject string
}

// recordSubject stores the authenticated subject for the access log. It is a
// no-op outside Logger.
func recordSubject(ctx context.Context, subject string) {
	if a, ok := ctx.Value(accessKey{}).(*access); ok {
		a.subject = subject
	}
}

// Logger writes one access log line per request. The route is the matched chi
// pattern so /admin/select/{nodeID} groups across node ids; requests that
// matched no route fall back to the raw path.
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			info := &access{}
			r = r.WithContext(context.WithValue(r.Context(), accessKey{}, info))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			}
			if node := nodeParam(r); node != "" {
				fields = append(fields, zap.String("node_id", node))
			}
			if info.subject != "" {
				fields = append(fields, zap.String("subject", info.subject))
			}

			switch status := ww.Status(); {
			case status >= http.StatusInternalServerError:
				logger.Error("HTTP request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}
		})
	}
}

func nodeParam(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.URLParam("nodeID")
}
