package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("server.encode_failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err onto a status and its public message. The cause is
// only logged.
func (h *Handler) writeAppError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code := common.HTTPStatus(err)
	attrs := []any{
		"req_id", common.RequestIDFromContext(r.Context()),
		"op", op,
		"status", code,
		"error", err,
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		attrs = append(attrs, "code", appErr.Code)
	}
	if code >= http.StatusInternalServerError {
		h.logger.Error("server.request_failed", attrs...)
	} else {
		h.logger.Warn("server.request_rejected", attrs...)
	}
	writeError(w, code, common.PublicMessage(err))
}
