package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/reposcore/pkg/controller/server"
	"github.com/m-mizutani/reposcore/pkg/infra"
	"github.com/m-mizutani/reposcore/pkg/usecase"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/test", testHandler)

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, reqID.String()).NotEqual("")
		gt.V(t, w.Header().Get("X-Request-Id")).Equal(reqID.String())
	})

	t.Run("request IDs differ per request", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		w1 := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w1, httptest.NewRequest("GET", "/health", nil))
		w2 := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w2, httptest.NewRequest("GET", "/health", nil))

		gt.V(t, w1.Header().Get("X-Request-Id")).NotEqual(w2.Header().Get("X-Request-Id"))
	})

	t.Run("statusCodeLogger captures WriteHeader calls", func(t *testing.T) {
		testCases := []struct {
			name         string
			handlerFunc  http.HandlerFunc
			expectedCode int
		}{
			{
				name: "captures 200 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				},
				expectedCode: http.StatusOK,
			},
			{
				name: "captures 404 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				},
				expectedCode: http.StatusNotFound,
			},
			{
				name: "captures 500 status code",
				handlerFunc: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				expectedCode: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := server.New(usecase.New(infra.New()))

				mux := srv.Mux()
				mux.HandleFunc("/test", tc.handlerFunc)

				req := httptest.NewRequest("GET", "/test", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				gt.V(t, w.Code).Equal(tc.expectedCode)
			})
		}
	})

	t.Run("middleware measures request duration", func(t *testing.T) {
		slowHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(10 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		})

		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/slow", slowHandler)

		req := httptest.NewRequest("GET", "/slow", nil)
		w := httptest.NewRecorder()

		start := time.Now()
		mux.ServeHTTP(w, req)
		elapsed := time.Since(start)

		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, elapsed >= 10*time.Millisecond).Equal(true)
	})

	t.Run("statusCodeLogger defaults to 200 when WriteHeader not called", func(t *testing.T) {
		handlerNoWriteHeader := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/noheader", handlerNoWriteHeader)

		req := httptest.NewRequest("GET", "/noheader", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
	})

	t.Run("panic is recovered as UNEXPECTED_ERROR", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))
		mux := srv.Mux()
		mux.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		req := httptest.NewRequest("GET", "/panic", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
		body := decode[errorBody](t, w)
		gt.V(t, body.ErrorCode).Equal("UNEXPECTED_ERROR")
		gt.V(t, body.Message).Equal("An unexpected error occurred.")
		gt.V(t, w.Header().Get("X-Request-Id")).NotEqual("")
	})
}
