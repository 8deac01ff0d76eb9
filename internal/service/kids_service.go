package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/pkg/entity"
)

type KidsService struct {
	kidsRepo     repository.KidsRepositoryI
	familiesRepo repository.FamiliesRepositoryI
	badgesRepo   repository.BadgesRepositoryI
}

func NewKidsService(kidsRepo repository.KidsRepositoryI, familiesRepo repository.FamiliesRepositoryI, badgesRepo repository.BadgesRepositoryI) *KidsService {
	if kidsRepo == nil || familiesRepo == nil || badgesRepo == nil {
		log.Fatal("on kids service provided nil repos")
	}
	return &KidsService{
		kidsRepo:     kidsRepo,
		familiesRepo: familiesRepo,
		badgesRepo:   badgesRepo,
	}
}

// familyKid loads the kid and verifies it belongs to the caller's family.
func (ks *KidsService) familyKid(ctx context.Context, ownerID, kidID uuid.UUID) (*entity.Kid, error) {
	family, err := ks.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	kid, err := ks.kidsRepo.GetByID(ctx, kidID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKidNotFound) {
			return nil, err
		}
		return nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != family.ID {
		return nil, errorvalues.ErrWrongFamily
	}
	return kid, nil
}

func (ks *KidsService) CreateKid(ctx context.Context, ownerID uuid.UUID, req *CreateKidRequest) (*entity.Kid, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	family, err := ks.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	k := entity.Kid{
		FamilyID: family.ID,
		Name:     req.Name,
	}
	id, err := ks.kidsRepo.Create(ctx, &k)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrKidNameTaken):
			return nil, errorvalues.ErrKidNameTaken
		case errors.Is(err, errorvalues.ErrFamilyNotFound):
			return nil, errorvalues.ErrFamilyNotFound
		}
		return nil, errors.New("kids repository error: " + err.Error())
	}
	kid, err := ks.kidsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("kids repository error: " + err.Error())
	}
	return kid, nil
}

func (ks *KidsService) GetKids(ctx context.Context, ownerID uuid.UUID) ([]*entity.Kid, error) {
	family, err := ks.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	kids, err := ks.kidsRepo.GetByFamilyID(ctx, family.ID)
	if err != nil {
		return nil, errors.New("kids repository error: " + err.Error())
	}
	return kids, nil
}

func (ks *KidsService) GetKid(ctx context.Context, ownerID, kidID uuid.UUID) (*KidDetail, error) {
	kid, err := ks.familyKid(ctx, ownerID, kidID)
	if err != nil {
		return nil, err
	}
	streak, err := ks.kidsRepo.GetStreak(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("kids repository error: " + err.Error())
	}
	badges, err := ks.badgesRepo.GetEarnedByKid(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return &KidDetail{
		Kid:    kid,
		Streak: streak,
		Badges: badges,
	}, nil
}

func (ks *KidsService) DeleteKid(ctx context.Context, ownerID, kidID uuid.UUID) error {
	kid, err := ks.familyKid(ctx, ownerID, kidID)
	if err != nil {
		return err
	}
	err = ks.kidsRepo.Delete(ctx, kid.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKidNotFound) {
			return err
		}
		return errors.New("kids repository error: " + err.Error())
	}
	return nil
}
