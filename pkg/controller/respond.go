package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"autobuilder/pkg/logger"
	"autobuilder/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorBody is the JSON document returned for every failed request.
type ErrorBody struct {
	Error     ErrorDetail `json:"error"`
	Timestamp string      `json:"timestamp"`
	Path      string      `json:"path"`
}

type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NewErrorBody converts err into the public error document. Internal errors
// never expose their cause.
func NewErrorBody(err error, path string, at time.Time) (int, ErrorBody) {
	kind := serrors.KindOf(err)

	return kind.Status(), ErrorBody{
		Error: ErrorDetail{
			Code:    kind.Status(),
			Message: serrors.PublicMessage(err),
			Type:    kind.Error(),
		},
		Timestamp: at.UTC().Format(time.RFC3339),
		Path:      path,
	}
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

// WriteError logs err and writes its error document. Server side failures are
// logged as errors, client mistakes at debug level.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := NewErrorBody(err, r.URL.Path, time.Now())
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err), zap.Int("status_code", status))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err), zap.Int("status_code", status))
	}

	WriteJSON(w, r, status, body)
}
