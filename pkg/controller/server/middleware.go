package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/utils/errutil"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
	"github.com/m-mizutani/reposcore/pkg/utils/metrics"
)

const headerRequestID = "X-Request-Id"

func preProcess(recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := types.NewRequestID()
			logger := logging.Default().With(slog.String("request_id", reqID.String()))

			ctx := logging.CtxWithRequestID(r.Context(), reqID)
			ctx = logging.With(ctx, logger)

			w.Header().Set(headerRequestID, reqID.String())

			lw := &statusCodeLogger{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
			}

			requestedAt := time.Now()
			next.ServeHTTP(lw, r.WithContext(ctx))
			elapsed := time.Since(requestedAt)

			recorder.ObserveHTTP(r.Method, routePattern(r), lw.statusCode, elapsed)

			logger.Info("http access",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status_code", lw.statusCode),
				slog.Int64("content_length", r.ContentLength),
				slog.String("user_agent", r.UserAgent()),
				slog.String("referer", r.Referer()),
				slog.Duration("elapsed", elapsed),
			)
		})
	}
}

// routePattern returns the matched chi route so that metric labels stay bounded
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := goerr.New("panic in HTTP handler",
				goerr.V("recovered", rec),
				goerr.V("path", r.URL.Path),
				goerr.V("method", r.Method),
			)
			errutil.HandleError(r.Context(), "recovered from panic", err)
			writeJSON(w, r, http.StatusInternalServerError, model.NewUnexpectedError())
		}()

		next.ServeHTTP(w, r)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
