package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/limbo/starhealth/pkg/httputil"
)

type HistoryResponse struct {
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Logs  []*entity.MedicationLog `json:"logs"`
}

func (s *Server) TodayReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "today reminders")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reminders, err := s.remindersService.Today(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "today reminders", err)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, reminders)
}

func (s *Server) AllReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "all reminders")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	reminders, err := s.remindersService.All(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "all reminders", err)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, reminders)
}

func (s *Server) ReminderHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "reminder history")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.remindersService.History(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "reminder history", err)
		return
	}
	if logs == nil {
		logs = []*entity.MedicationLog{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", HistoryResponse{
		Page:  page,
		Limit: limit,
		Logs:  logs,
	})
}

func (s *Server) MarkTaken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "mark taken")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "mark taken")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	snapshot, err := s.remindersService.MarkTaken(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "mark taken", err)
		return
	}
	s.metrics.RecordDoseTaken()
	httputil.WriteJSONResponse(w, http.StatusOK, "medication marked as taken", snapshot)
	logger.Info("reminder completed",
		slog.String("reminder_id", id.String()),
		slog.Int("total_stars", snapshot.TotalStars),
	)
}

func (s *Server) CancelReminder(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "cancel reminder")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "cancel reminder")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.remindersService.Cancel(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "cancel reminder", err)
		return
	}
	s.metrics.RecordReminderCancelled()
	httputil.WriteJSONResponse(w, http.StatusOK, "reminder cancelled", nil)
	logger.Info("reminder cancelled", slog.String("reminder_id", id.String()))
}
