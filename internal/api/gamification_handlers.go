package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/starhealth/pkg/httputil"
)

// gamificationView serves one read-only projection of the user's gamification record.
func gamificationView[T any](op string, get func(ctx context.Context, uid uuid.UUID) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, ok := authorized(w, r, logger, op)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
		defer cancel()
		view, err := get(ctx, uid)
		if err != nil {
			writeServiceError(w, logger, op, err)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, "", view)
	}
}

func (s *Server) Score(w http.ResponseWriter, r *http.Request) {
	gamificationView("score", s.gamificationService.Score)(w, r)
}

func (s *Server) Planet(w http.ResponseWriter, r *http.Request) {
	gamificationView("planet", s.gamificationService.Planet)(w, r)
}

func (s *Server) Streak(w http.ResponseWriter, r *http.Request) {
	gamificationView("streak", s.gamificationService.Streak)(w, r)
}
