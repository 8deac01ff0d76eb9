package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/pkg/entity"
)

// CompletionsService ties the reward engine to storage: logging runs the
// same-day guard, approval runs the full points/streak/badge pipeline.
type CompletionsService struct {
	completionsRepo repository.CompletionsRepositoryI
	tasksRepo       repository.TasksRepositoryI
	kidsRepo        repository.KidsRepositoryI
	familiesRepo    repository.FamiliesRepositoryI
	badgesRepo      repository.BadgesRepositoryI
}

func NewCompletionsService(
	completionsRepo repository.CompletionsRepositoryI,
	tasksRepo repository.TasksRepositoryI,
	kidsRepo repository.KidsRepositoryI,
	familiesRepo repository.FamiliesRepositoryI,
	badgesRepo repository.BadgesRepositoryI,
) *CompletionsService {
	if completionsRepo == nil || tasksRepo == nil || kidsRepo == nil || familiesRepo == nil || badgesRepo == nil {
		log.Fatal("on completions service provided nil repos")
	}
	return &CompletionsService{
		completionsRepo: completionsRepo,
		tasksRepo:       tasksRepo,
		kidsRepo:        kidsRepo,
		familiesRepo:    familiesRepo,
		badgesRepo:      badgesRepo,
	}
}

func (cs *CompletionsService) LogCompletion(ctx context.Context, req *LogCompletionRequest) (*entity.Completion, *ApprovalResult, error) {
	if err := validateStruct(*req); err != nil {
		return nil, nil, err
	}
	task, err := cs.tasksRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("tasks repository error: " + err.Error())
	}
	if !task.IsActive {
		return nil, nil, errorvalues.ErrTaskInactive
	}
	kid, err := cs.kidsRepo.GetByID(ctx, req.KidID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrKidNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != task.FamilyID {
		return nil, nil, errorvalues.ErrWrongFamily
	}
	now := time.Now()
	exists, err := cs.completionsRepo.ExistsForDay(ctx, task.ID, kid.ID, now)
	if err != nil {
		return nil, nil, errors.New("completions repository error: " + err.Error())
	}
	if exists {
		return nil, nil, errorvalues.ErrCompletedToday
	}
	completion := &entity.Completion{
		TaskID:            task.ID,
		KidID:             kid.ID,
		Status:            entity.CompletionStatusPending,
		CompletedAt:       now,
		ElapsedSeconds:    req.ElapsedSeconds,
		MultiplierApplied: 1.0,
	}
	id, err := cs.completionsRepo.Create(ctx, completion)
	if err != nil {
		return nil, nil, errors.New("completions repository error: " + err.Error())
	}
	completion.ID = id
	if task.RequiresApproval {
		return completion, nil, nil
	}
	family, err := cs.familiesRepo.GetByID(ctx, kid.FamilyID)
	if err != nil {
		return nil, nil, errors.New("families repository error: " + err.Error())
	}
	result, err := cs.approve(ctx, completion, task, kid, family, nil)
	if err != nil {
		return nil, nil, err
	}
	return completion, result, nil
}

func (cs *CompletionsService) ListPending(ctx context.Context, ownerID uuid.UUID) ([]*entity.Completion, error) {
	family, err := cs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	completions, err := cs.completionsRepo.ListPendingByFamily(ctx, family.ID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return completions, nil
}

func (cs *CompletionsService) ListKidHistory(ctx context.Context, ownerID, kidID uuid.UUID, pagination PaginationOpts) ([]*entity.Completion, error) {
	_, err := cs.familyKid(ctx, ownerID, kidID)
	if err != nil {
		return nil, err
	}
	completions, err := cs.completionsRepo.ListByKid(ctx, kidID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return completions, nil
}

func (cs *CompletionsService) Approve(ctx context.Context, ownerID, completionID uuid.UUID) (*ApprovalResult, error) {
	family, err := cs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	completion, err := cs.completionsRepo.GetByID(ctx, completionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return nil, err
		}
		return nil, errors.New("completions repository error: " + err.Error())
	}
	if completion.Status != entity.CompletionStatusPending {
		return nil, errorvalues.ErrCompletionProcessed
	}
	kid, err := cs.kidsRepo.GetByID(ctx, completion.KidID)
	if err != nil {
		return nil, errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != family.ID {
		return nil, errorvalues.ErrWrongFamily
	}
	task, err := cs.tasksRepo.GetByID(ctx, completion.TaskID)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return cs.approve(ctx, completion, task, kid, family, &ownerID)
}

// approve runs the reward pipeline for one completion. The multiplier comes
// from the streak as it stood before this approval; the streak then advances
// off the completion's own timestamp.
func (cs *CompletionsService) approve(ctx context.Context, completion *entity.Completion, task *entity.Task, kid *entity.Kid, family *entity.Family, approverID *uuid.UUID) (*ApprovalResult, error) {
	streak, err := cs.kidsRepo.GetStreak(ctx, kid.ID)
	if err != nil {
		return nil, errors.New("kids repository error: " + err.Error())
	}
	multiplier := rewards.MultiplierFor(streak.CurrentCount, family.Multipliers)
	points := rewards.PointsWithMultiplier(task.Points, streak.CurrentCount, family.Multipliers)
	beatTarget := false
	if task.Type == entity.TaskTypeBeatTheTimer && task.TimerMinutes != nil && completion.ElapsedSeconds != nil {
		beatTarget = rewards.BeatsTimer(*task.TimerMinutes, *completion.ElapsedSeconds)
		points += rewards.BeatTimerBonus(*task.TimerMinutes, *completion.ElapsedSeconds, task.BonusPoints)
	}
	newBalance := rewards.NewBalance(kid.PointsBalance, points)
	var streakUpdate *rewards.StreakUpdate
	if task.CountsTowardStreak {
		update := rewards.CalculateStreakUpdate(streak.State(), completion.CompletedAt)
		streakUpdate = &update
	}
	record := repository.ApprovalRecord{
		CompletionID:      completion.ID,
		ApprovedByID:      approverID,
		PointsAwarded:     points,
		MultiplierApplied: multiplier,
		BeatTarget:        beatTarget,
		NewBalance:        &newBalance,
		Streak:            streakUpdate,
	}
	err = cs.completionsRepo.Approve(ctx, kid.ID, record)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionProcessed) {
			return nil, err
		}
		return nil, errors.New("completions repository error: " + err.Error())
	}
	now := time.Now()
	completion.Status = entity.CompletionStatusApproved
	completion.PointsAwarded = points
	completion.MultiplierApplied = multiplier
	completion.BeatTarget = beatTarget
	completion.ApprovedByID = approverID
	completion.ApprovedAt = &now
	newBadges, err := cs.evaluateBadges(ctx, kid.ID)
	if err != nil {
		return nil, err
	}
	return &ApprovalResult{
		Completion:    completion,
		PointsAwarded: points,
		Multiplier:    multiplier,
		Streak:        streakUpdate,
		NewBadges:     newBadges,
	}, nil
}

// evaluateBadges re-checks the catalog against a fresh stats snapshot and
// persists anything newly earned.
func (cs *CompletionsService) evaluateBadges(ctx context.Context, kidID uuid.UUID) ([]*entity.BadgeDefinition, error) {
	stats, err := cs.completionsRepo.KidStats(ctx, kidID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	catalog, err := cs.badgesRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earned, err := cs.badgesRepo.GetEarnedByKid(ctx, kidID)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	earnedSlugs := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		earnedSlugs[b.Slug] = struct{}{}
	}
	bySlug := make(map[string]*entity.BadgeDefinition, len(catalog))
	engineBadges := make([]rewards.Badge, 0, len(catalog))
	for _, b := range catalog {
		bySlug[b.Slug] = b
		engineBadges = append(engineBadges, b.Engine())
	}
	qualified := rewards.CheckNewBadges(engineBadges, earnedSlugs, stats)
	if len(qualified) == 0 {
		return []*entity.BadgeDefinition{}, nil
	}
	newBadges := make([]*entity.BadgeDefinition, 0, len(qualified))
	badgeIDs := make([]uuid.UUID, 0, len(qualified))
	for _, b := range qualified {
		def := bySlug[b.Slug]
		newBadges = append(newBadges, def)
		badgeIDs = append(badgeIDs, def.ID)
	}
	err = cs.badgesRepo.Award(ctx, kidID, badgeIDs)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return newBadges, nil
}

func (cs *CompletionsService) Reject(ctx context.Context, ownerID, completionID uuid.UUID, reason string) error {
	family, err := cs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return err
		}
		return errors.New("families repository error: " + err.Error())
	}
	completion, err := cs.completionsRepo.GetByID(ctx, completionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return err
		}
		return errors.New("completions repository error: " + err.Error())
	}
	if completion.Status != entity.CompletionStatusPending {
		return errorvalues.ErrCompletionProcessed
	}
	kid, err := cs.kidsRepo.GetByID(ctx, completion.KidID)
	if err != nil {
		return errors.New("kids repository error: " + err.Error())
	}
	if kid.FamilyID != family.ID {
		return errorvalues.ErrWrongFamily
	}
	err = cs.completionsRepo.Reject(ctx, completionID, ownerID, reason)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionProcessed) {
			return err
		}
		return errors.New("completions repository error: " + err.Error())
	}
	return nil
}

func (cs *CompletionsService) familyKid(ctx context.Context, ownerID, kidID uuid.UUID) (*entity.Kid, error) {
	family, err := cs.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	kid, err := cs.kidsRepo.GetByID(ctx, kidID)
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
