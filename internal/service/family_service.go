package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

type FamilyService struct {
	repo repository.FamiliesRepositoryI
}

func NewFamilyService(familiesRepo repository.FamiliesRepositoryI) *FamilyService {
	if familiesRepo == nil {
		log.Fatal("provided nil familiesRepo")
	}
	return &FamilyService{
		repo: familiesRepo,
	}
}

func (fs *FamilyService) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error) {
	family, err := fs.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	return family, nil
}

func (fs *FamilyService) UpdateMultipliers(ctx context.Context, ownerID uuid.UUID, req *UpdateMultipliersRequest) (*entity.Family, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	family, err := fs.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	multipliers := &rewards.StreakMultipliers{
		Tier1: req.Tier1,
		Tier2: req.Tier2,
		Tier3: req.Tier3,
	}
	err = fs.repo.UpdateMultipliers(ctx, family.ID, multipliers)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	family.Multipliers = multipliers
	return family, nil
}

func (fs *FamilyService) ResetMultipliers(ctx context.Context, ownerID uuid.UUID) (*entity.Family, error) {
	family, err := fs.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	err = fs.repo.UpdateMultipliers(ctx, family.ID, nil)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	family.Multipliers = nil
	return family, nil
}
