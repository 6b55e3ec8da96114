package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/starhealth/pkg/httputil"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

func decodeBody(body io.ReadCloser, dst any) error {
	defer body.Close()
	return sonic.ConfigDefault.NewDecoder(body).Decode(dst)
}

// writeServiceError answers with the status of err's kind. Only internal failures are logged as errors.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := httputil.WriteKindError(w, err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		return
	}
	logger.Warn(op+" error", slog.Int("status", status), slog.String("error", err.Error()))
}

// authorized returns the uid put into the context by AuthMiddleware, answering 401 when missing.
func authorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return uuid.UUID{}, false
	}
	return uid, true
}

func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Warn(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value")
		return uuid.UUID{}, false
	}
	return id, true
}
