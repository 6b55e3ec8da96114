package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/starhealth/internal/error_values"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/pkg/entity"
)

const (
	DefaultDosage   = "1"
	DefaultCategory = "flexible"
)

type MedicationsService struct {
	repo repository.MedicationsRepositoryI
}

func NewMedicationsService(medsRepo repository.MedicationsRepositoryI) *MedicationsService {
	if medsRepo == nil {
		log.Fatal("provided nil medicationsRepo")
	}
	return &MedicationsService{
		repo: medsRepo,
	}
}

func (req *MedicationRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Dosage = strings.TrimSpace(req.Dosage)
	req.Category = strings.TrimSpace(req.Category)
	req.Timer.Period = strings.ToUpper(strings.TrimSpace(req.Timer.Period))
	if req.Dosage == "" {
		req.Dosage = DefaultDosage
	}
	if req.Category == "" {
		req.Category = DefaultCategory
	}
}

func (req *MedicationRequest) toEntity(id, uid uuid.UUID) *entity.Medication {
	return &entity.Medication{
		ID:       id,
		UserID:   uid,
		Name:     req.Name,
		Dosage:   req.Dosage,
		Category: req.Category,
		Timer: entity.Timer{
			Hours:   req.Timer.Hours,
			Minutes: req.Timer.Minutes,
			Period:  req.Timer.Period,
		},
		IsActive: true,
	}
}

func (ms *MedicationsService) Create(ctx context.Context, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, *entity.Reminder, error) {
	req.normalize()
	if err := validateStruct(req); err != nil {
		return nil, nil, err
	}
	med, reminder, err := ms.repo.Create(ctx, req.toEntity(uuid.Nil, uid))
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, nil, errorvalues.ErrUserNotFound
		}
		return nil, nil, errors.New("medications repository error: " + err.Error())
	}
	return med, reminder, nil
}

func (ms *MedicationsService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Medication, error) {
	meds, err := ms.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return meds, nil
}

func (ms *MedicationsService) Get(ctx context.Context, id, uid uuid.UUID) (*entity.Medication, error) {
	med, err := ms.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationMissing) {
			return nil, err
		}
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return med, nil
}

func (ms *MedicationsService) Update(ctx context.Context, id, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error) {
	req.normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	err := ms.repo.Update(ctx, req.toEntity(id, uid))
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationMissing) {
			return nil, err
		}
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return ms.Get(ctx, id, uid)
}

func (ms *MedicationsService) Delete(ctx context.Context, id, uid uuid.UUID) (int64, error) {
	cancelled, err := ms.repo.Deactivate(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationMissing) {
			return 0, err
		}
		return 0, errors.New("medications repository error: " + err.Error())
	}
	return cancelled, nil
}
