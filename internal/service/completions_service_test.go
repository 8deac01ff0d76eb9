package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/repository/mocks"
	"github.com/kideo/kideo/internal/rewards"
	"github.com/kideo/kideo/internal/service"
	"github.com/kideo/kideo/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func badgeCatalog() []*entity.BadgeDefinition {
	return []*entity.BadgeDefinition{
		{ID: uuid.New(), Slug: "first-task", Name: "First Steps", Criteria: rewards.BadgeCriteria{Type: rewards.CriteriaTaskCount, Value: 1}, SortOrder: 1},
		{ID: uuid.New(), Slug: "streak-3", Name: "Getting Started", Criteria: rewards.BadgeCriteria{Type: rewards.CriteriaStreak, Value: 3}, SortOrder: 2},
		{ID: uuid.New(), Slug: "streak-7", Name: "Week Warrior", Criteria: rewards.BadgeCriteria{Type: rewards.CriteriaStreak, Value: 7}, SortOrder: 3},
		{ID: uuid.New(), Slug: "point-collector-100", Name: "Coin Collector", Criteria: rewards.BadgeCriteria{Type: rewards.CriteriaTotalPointsEarned, Value: 100}, SortOrder: 8},
	}
}

func TestLogCompletion(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	kidsRepo := mocks.NewMockKidsRepositoryI(ctrl)
	familiesRepo := mocks.NewMockFamiliesRepositoryI(ctrl)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)

	serv := service.NewCompletionsService(completionsRepo, tasksRepo, kidsRepo, familiesRepo, badgesRepo)
	familyID := uuid.New()
	taskID := uuid.New()
	kidID := uuid.New()
	completionID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success pending",
			Error: nil,
			MockPrepFunc: func() {
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
					ID:               taskID,
					FamilyID:         familyID,
					Title:            "dishes",
					Category:         entity.TaskCategoryPaid,
					Type:             entity.TaskTypeIndividual,
					Points:           10,
					RequiresApproval: true,
					IsActive:         true,
				}, nil)
				kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
					ID:       kidID,
					FamilyID: familyID,
					Name:     "test_kid",
				}, nil)
				completionsRepo.EXPECT().ExistsForDay(gomock.Any(), taskID, kidID, gomock.Any()).Return(false, nil)
				completionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(completionID, nil)
			},
		},
		{
			Desc:  "error already completed today",
			Error: errorvalues.ErrCompletedToday,
			MockPrepFunc: func() {
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
					ID:               taskID,
					FamilyID:         familyID,
					Category:         entity.TaskCategoryPaid,
					Type:             entity.TaskTypeIndividual,
					Points:           10,
					RequiresApproval: true,
					IsActive:         true,
				}, nil)
				kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
					ID:       kidID,
					FamilyID: familyID,
				}, nil)
				completionsRepo.EXPECT().ExistsForDay(gomock.Any(), taskID, kidID, gomock.Any()).Return(true, nil)
			},
		},
		{
			Desc:  "error inactive task",
			Error: errorvalues.ErrTaskInactive,
			MockPrepFunc: func() {
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
					ID:       taskID,
					FamilyID: familyID,
					IsActive: false,
				}, nil)
			},
		},
		{
			Desc:  "error kid from another family",
			Error: errorvalues.ErrWrongFamily,
			MockPrepFunc: func() {
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
					ID:       taskID,
					FamilyID: familyID,
					IsActive: true,
				}, nil)
				kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
					ID:       kidID,
					FamilyID: uuid.New(),
				}, nil)
			},
		},
		{
			Desc:  "error task not found",
			Error: errorvalues.ErrTaskNotFound,
			MockPrepFunc: func() {
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(nil, errorvalues.ErrTaskNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			completion, result, err := serv.LogCompletion(ctx, &service.LogCompletionRequest{
				TaskID: taskID,
				KidID:  kidID,
			})
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, completionID, completion.ID)
				assert.Equal(t, entity.CompletionStatusPending, completion.Status)
				assert.Nil(t, result)
			}
		})
	}
}

func TestLogCompletionAutoApprove(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	kidsRepo := mocks.NewMockKidsRepositoryI(ctrl)
	familiesRepo := mocks.NewMockFamiliesRepositoryI(ctrl)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)

	serv := service.NewCompletionsService(completionsRepo, tasksRepo, kidsRepo, familiesRepo, badgesRepo)
	familyID := uuid.New()
	taskID := uuid.New()
	kidID := uuid.New()
	completionID := uuid.New()
	catalog := badgeCatalog()

	tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
		ID:                 taskID,
		FamilyID:           familyID,
		Title:              "clean room race",
		Category:           entity.TaskCategoryPaid,
		Type:               entity.TaskTypeBeatTheTimer,
		Points:             10,
		BonusPoints:        5,
		TimerMinutes:       intPtr(10),
		RequiresApproval:   false,
		CountsTowardStreak: true,
		IsActive:           true,
	}, nil)
	kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
		ID:       kidID,
		FamilyID: familyID,
	}, nil)
	completionsRepo.EXPECT().ExistsForDay(gomock.Any(), taskID, kidID, gomock.Any()).Return(false, nil)
	completionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(completionID, nil)
	familiesRepo.EXPECT().GetByID(gomock.Any(), familyID).Return(&entity.Family{
		ID: familyID,
	}, nil)
	kidsRepo.EXPECT().GetStreak(gomock.Any(), kidID).Return(&entity.Streak{
		KidID:       kidID,
		CurrentTier: rewards.Tier1,
	}, nil)
	completionsRepo.EXPECT().Approve(gomock.Any(), kidID, gomock.Any()).Return(nil)
	completionsRepo.EXPECT().KidStats(gomock.Any(), kidID).Return(rewards.KidStats{
		TotalTasksCompleted: 1,
		CurrentStreak:       1,
		TimedTasksCompleted: 1,
		BeatTimerCount:      1,
		TotalPointsEarned:   15,
	}, nil)
	badgesRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)
	badgesRepo.EXPECT().GetEarnedByKid(gomock.Any(), kidID).Return([]*entity.EarnedBadge{}, nil)
	badgesRepo.EXPECT().Award(gomock.Any(), kidID, []uuid.UUID{catalog[0].ID}).Return(nil)

	ctx := context.Background()
	completion, result, err := serv.LogCompletion(ctx, &service.LogCompletionRequest{
		TaskID:         taskID,
		KidID:          kidID,
		ElapsedSeconds: intPtr(599),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entity.CompletionStatusApproved, completion.Status)
	assert.True(t, completion.BeatTarget)
	assert.Equal(t, 15, result.PointsAwarded)
	assert.Equal(t, 1.0, result.Multiplier)
	require.NotNil(t, result.Streak)
	assert.Equal(t, 1, result.Streak.CurrentCount)
	assert.True(t, result.Streak.WasIncremented)
	require.Equal(t, 1, len(result.NewBadges))
	assert.Equal(t, "first-task", result.NewBadges[0].Slug)
}

func TestApproveCompletion(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	kidsRepo := mocks.NewMockKidsRepositoryI(ctrl)
	familiesRepo := mocks.NewMockFamiliesRepositoryI(ctrl)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)

	serv := service.NewCompletionsService(completionsRepo, tasksRepo, kidsRepo, familiesRepo, badgesRepo)
	ownerID := uuid.New()
	familyID := uuid.New()
	taskID := uuid.New()
	kidID := uuid.New()
	completionID := uuid.New()
	catalog := badgeCatalog()
	completedAt := time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)
	lastActive := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("ten points on a six day streak award twelve and reach tier three", func(t *testing.T) {
		familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
			ID:      familyID,
			OwnerID: ownerID,
		}, nil)
		completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(&entity.Completion{
			ID:          completionID,
			TaskID:      taskID,
			KidID:       kidID,
			Status:      entity.CompletionStatusPending,
			CompletedAt: completedAt,
		}, nil)
		kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
			ID:            kidID,
			FamilyID:      familyID,
			PointsBalance: 30,
		}, nil)
		tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{
			ID:                 taskID,
			FamilyID:           familyID,
			Category:           entity.TaskCategoryPaid,
			Type:               entity.TaskTypeIndividual,
			Points:             10,
			RequiresApproval:   true,
			CountsTowardStreak: true,
			IsActive:           true,
		}, nil)
		kidsRepo.EXPECT().GetStreak(gomock.Any(), kidID).Return(&entity.Streak{
			KidID:          kidID,
			CurrentCount:   6,
			LongestCount:   6,
			LastActiveDate: &lastActive,
			CurrentTier:    rewards.Tier2,
		}, nil)
		completionsRepo.EXPECT().Approve(gomock.Any(), kidID, repository.ApprovalRecord{
			CompletionID:      completionID,
			ApprovedByID:      &ownerID,
			PointsAwarded:     12,
			MultiplierApplied: 1.2,
			NewBalance:        intPtr(42),
			Streak: &rewards.StreakUpdate{
				StreakState: rewards.StreakState{
					CurrentCount: 7,
					LongestCount: 7,
					// the raw completion timestamp is stored, not the day boundary
					LastActiveDate: &completedAt,
					CurrentTier:    rewards.Tier3,
				},
				WasIncremented: true,
			},
		}).Return(nil)
		completionsRepo.EXPECT().KidStats(gomock.Any(), kidID).Return(rewards.KidStats{
			TotalTasksCompleted: 15,
			CurrentStreak:       7,
			TotalPointsEarned:   92,
		}, nil)
		badgesRepo.EXPECT().GetAll(gomock.Any()).Return(catalog, nil)
		badgesRepo.EXPECT().GetEarnedByKid(gomock.Any(), kidID).Return([]*entity.EarnedBadge{
			{KidID: kidID, Slug: "first-task"},
			{KidID: kidID, Slug: "streak-3"},
		}, nil)
		badgesRepo.EXPECT().Award(gomock.Any(), kidID, []uuid.UUID{catalog[2].ID}).Return(nil)

		result, err := serv.Approve(context.Background(), ownerID, completionID)
		require.NoError(t, err)
		assert.Equal(t, 12, result.PointsAwarded)
		assert.Equal(t, 1.2, result.Multiplier)
		require.NotNil(t, result.Streak)
		assert.Equal(t, 7, result.Streak.CurrentCount)
		assert.Equal(t, rewards.Tier3, result.Streak.CurrentTier)
		assert.True(t, result.Streak.WasIncremented)
		require.Equal(t, 1, len(result.NewBadges))
		assert.Equal(t, "streak-7", result.NewBadges[0].Slug)
	})
	t.Run("already processed", func(t *testing.T) {
		familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
			ID:      familyID,
			OwnerID: ownerID,
		}, nil)
		completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(&entity.Completion{
			ID:     completionID,
			TaskID: taskID,
			KidID:  kidID,
			Status: entity.CompletionStatusApproved,
		}, nil)
		_, err := serv.Approve(context.Background(), ownerID, completionID)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionProcessed)
	})
	t.Run("kid from another family", func(t *testing.T) {
		familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
			ID:      familyID,
			OwnerID: ownerID,
		}, nil)
		completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(&entity.Completion{
			ID:     completionID,
			TaskID: taskID,
			KidID:  kidID,
			Status: entity.CompletionStatusPending,
		}, nil)
		kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
			ID:       kidID,
			FamilyID: uuid.New(),
		}, nil)
		_, err := serv.Approve(context.Background(), ownerID, completionID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongFamily)
	})
	t.Run("completion not found", func(t *testing.T) {
		familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
			ID:      familyID,
			OwnerID: ownerID,
		}, nil)
		completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(nil, errorvalues.ErrCompletionNotFound)
		_, err := serv.Approve(context.Background(), ownerID, completionID)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionNotFound)
	})
}

func TestRejectCompletionService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	kidsRepo := mocks.NewMockKidsRepositoryI(ctrl)
	familiesRepo := mocks.NewMockFamiliesRepositoryI(ctrl)
	badgesRepo := mocks.NewMockBadgesRepositoryI(ctrl)

	serv := service.NewCompletionsService(completionsRepo, tasksRepo, kidsRepo, familiesRepo, badgesRepo)
	ownerID := uuid.New()
	familyID := uuid.New()
	kidID := uuid.New()
	completionID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
					ID:      familyID,
					OwnerID: ownerID,
				}, nil)
				completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(&entity.Completion{
					ID:     completionID,
					KidID:  kidID,
					Status: entity.CompletionStatusPending,
				}, nil)
				kidsRepo.EXPECT().GetByID(gomock.Any(), kidID).Return(&entity.Kid{
					ID:       kidID,
					FamilyID: familyID,
				}, nil)
				completionsRepo.EXPECT().Reject(gomock.Any(), completionID, ownerID, "messy job").Return(nil)
			},
		},
		{
			Desc:  "already processed",
			Error: errorvalues.ErrCompletionProcessed,
			MockPrepFunc: func() {
				familiesRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(&entity.Family{
					ID:      familyID,
					OwnerID: ownerID,
				}, nil)
				completionsRepo.EXPECT().GetByID(gomock.Any(), completionID).Return(&entity.Completion{
					ID:     completionID,
					KidID:  kidID,
					Status: entity.CompletionStatusRejected,
				}, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.Reject(ctx, ownerID, completionID, "messy job")
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
