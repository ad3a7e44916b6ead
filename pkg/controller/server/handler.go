package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/utils/errutil"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
)

type searchFunc func(ctx context.Context, params *model.SearchParams) ([]*model.ScoredRepository, error)

func handleSearch(search searchFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logging.From(ctx).Info("Incoming search request", slog.String("query", r.URL.RawQuery))

		params, err := model.SearchParamsFromQuery(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}

		repos, err := search(ctx, params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		reqID, _ := logging.CtxRequestID(ctx)
		if repos == nil {
			repos = []*model.ScoredRepository{}
		}
		writeJSON(w, r, http.StatusOK, &model.SearchResponse{
			RequestID: reqID,
			Data:      repos,
		})
	}
}

// writeError renders err as an error envelope. Errors other than *model.APIError are
// reported and answered with a generic internal server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		errutil.HandleError(ctx, "fail to handle request", err)
		apiErr = model.NewInternalServerError(model.MsgInternalServerError,
			model.WithDetails(map[string]any{"originalError": err.Error()}),
		)
	} else if apiErr.StatusCode >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "API error", err)
	} else {
		logging.From(ctx).Warn("API error",
			slog.Int("status_code", apiErr.StatusCode),
			slog.String("error_code", apiErr.ErrorCode),
			slog.String("message", apiErr.Message),
			slog.Any("details", apiErr.Details),
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method),
		)
	}

	writeJSON(w, r, apiErr.StatusCode, apiErr.Public())
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to encode response", goerr.Wrap(err, "failed to marshal response"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		safeWrite(w, http.StatusInternalServerError, []byte(model.MsgUnexpectedError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}
