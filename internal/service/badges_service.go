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

// nearbyThreshold keeps the "almost there" list to badges genuinely in reach.
const nearbyThreshold = 50

type BadgesService struct {
	badgesRepo      repository.BadgesRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	kidsRepo        repository.KidsRepositoryI
	familiesRepo    repository.FamiliesRepositoryI
}

func NewBadgesService(
	badgesRepo repository.BadgesRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	kidsRepo repository.KidsRepositoryI,
	familiesRepo repository.FamiliesRepositoryI,
) *BadgesService {
	if badgesRepo == nil || completionsRepo == nil || kidsRepo == nil || familiesRepo == nil {
		log.Fatal("on badges service provided nil repos")
	}
	return &BadgesService{
		badgesRepo:      badgesRepo,
		completionsRepo: completionsRepo,
		kidsRepo:        kidsRepo,
		familiesRepo:    familiesRepo,
	}
}

func (bs *BadgesService) Catalog(ctx context.Context) ([]*entity.BadgeDefinition, error) {
	catalog, err := bs.badgesRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return catalog, nil
}

func (bs *BadgesService) familyKid(ctx context.Context, ownerID, kidID uuid.UUID) (*entity.Kid, error) {
	family, err := bs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	kid, err := bs.kidsRepo.GetByID(ctx, kidID)
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

func (bs *BadgesService) EarnedBadges(ctx context.Context, ownerID, kidID uuid.UUID) ([]*entity.EarnedBadge, error) {
	kid, err := bs.familyKid(ctx, ownerID, kidID)
	if err != nil {
		return nil, err
	}
	earned, err := bs.badgesRepo.GetEarnedByKid(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return earned, nil
}

func (bs *BadgesService) Progress(ctx context.Context, ownerID, kidID uuid.UUID) (*KidProgress, error) {
	kid, err := bs.familyKid(ctx, ownerID, kidID)
	if err != nil {
		return nil, err
	}
	stats, err := bs.completionsRepo.KidStats(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	catalog, err := bs.badgesRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earned, err := bs.badgesRepo.GetEarnedByKid(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earnedSlugs := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		earnedSlugs[b.Slug] = struct{}{}
	}
	engineBadges := make([]rewards.Badge, 0, len(catalog))
	for _, b := range catalog {
		engineBadges = append(engineBadges, b.Engine())
	}
	return &KidProgress{
		Stats:  stats,
		Nearby: rewards.NearbyBadges(engineBadges, earnedSlugs, stats, nearbyThreshold),
	}, nil
}
