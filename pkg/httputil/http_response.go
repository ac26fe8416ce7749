package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// WriteErrorResponse writes {code, message, details}. details is omitted when nil.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		WriteNoContent(w, statusCode)
		return
	}
	writeJSON(w, statusCode, body)
}

// WriteNoContent writes only the status line.
func WriteNoContent(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(body); err != nil {
		slog.Error("writing response body error", slog.String("error", err.Error()))
	}
}
