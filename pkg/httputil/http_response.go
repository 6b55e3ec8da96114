package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const internalMessage = "internal server error"

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{Success: false, Message: message})
}

// WriteKindError writes err using the status of its kind. Internal errors never leak their text.
func WriteKindError(w http.ResponseWriter, err error) int {
	kind := errorvalues.KindOf(err)
	status := StatusForKind(kind)
	msg := internalMessage
	if kind != errorvalues.KindInternal {
		msg = err.Error()
	}
	WriteErrorResponse(w, status, msg)
	return status
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, message string, data any) {
	writeEnvelope(w, statusCode, Envelope{Success: true, Message: message, Data: data})
}

func WriteListResponse[T any](w http.ResponseWriter, statusCode int, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	writeEnvelope(w, statusCode, Envelope{Success: true, Count: &n, Data: items})
}

func StatusForKind(k errorvalues.Kind) int {
	switch k {
	case errorvalues.KindValidation, errorvalues.KindIneligible:
		return http.StatusBadRequest
	case errorvalues.KindUnauthorized:
		return http.StatusUnauthorized
	case errorvalues.KindNotFound:
		return http.StatusNotFound
	case errorvalues.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeEnvelope(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}
