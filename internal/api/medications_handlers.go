package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/pkg/entity"
	"github.com/limbo/starhealth/pkg/httputil"
)

type TimerRequest struct {
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Period  string `json:"period"`
}

type MedicationRequest struct {
	Name     string       `json:"name"`
	Dosage   string       `json:"dosage"`
	Category string       `json:"category"`
	Timer    TimerRequest `json:"timer"`
}

type CreateMedicationResponse struct {
	Medication *entity.Medication `json:"medication"`
	Reminder   *entity.Reminder   `json:"reminder"`
}

func (req *MedicationRequest) toService() *service.MedicationRequest {
	return &service.MedicationRequest{
		Name:     req.Name,
		Dosage:   req.Dosage,
		Category: req.Category,
		Timer: service.TimerRequest{
			Hours:   req.Timer.Hours,
			Minutes: req.Timer.Minutes,
			Period:  req.Timer.Period,
		},
	}
}

func (s *Server) CreateMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create medication")
	if !ok {
		return
	}
	var req MedicationRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("create medication error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	med, reminder, err := s.medicationsService.Create(ctx, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "create medication", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, "medication created", CreateMedicationResponse{
		Medication: med,
		Reminder:   reminder,
	})
	logger.Info("medication created", slog.String("medication_id", med.ID.String()))
}

func (s *Server) ListMedications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "list medications")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	meds, err := s.medicationsService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list medications", err)
		return
	}
	httputil.WriteListResponse(w, http.StatusOK, meds)
}

func (s *Server) GetMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get medication")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get medication")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	med, err := s.medicationsService.Get(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get medication", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "", med)
}

func (s *Server) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update medication")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "update medication")
	if !ok {
		return
	}
	var req MedicationRequest
	if err := decodeBody(r.Body, &req); err != nil {
		logger.Warn("update medication error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	med, err := s.medicationsService.Update(ctx, id, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "update medication", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "medication updated", med)
	logger.Info("medication updated", slog.String("medication_id", id.String()))
}

func (s *Server) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "delete medication")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "delete medication")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	cancelled, err := s.medicationsService.Delete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "delete medication", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "medication deleted", nil)
	logger.Info("medication deleted",
		slog.String("medication_id", id.String()),
		slog.Int64("cancelled_reminders", cancelled),
	)
}
