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

type TasksService struct {
	tasksRepo    repository.TasksRepositoryI
	familiesRepo repository.FamiliesRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, familiesRepo repository.FamiliesRepositoryI) *TasksService {
	if tasksRepo == nil || familiesRepo == nil {
		log.Fatal("on tasks service provided nil repos")
	}
	return &TasksService{
		tasksRepo:    tasksRepo,
		familiesRepo: familiesRepo,
	}
}

// checkTaskConfig rejects setups the reward pipeline can never award
// correctly: timed tasks need a target, expected chores carry no points.
func checkTaskConfig(req *CreateTaskRequest) error {
	taskType := entity.TaskType(req.Type)
	if taskType.IsTimed() && req.TimerMinutes == nil {
		return errors.New("timed tasks require timer_minutes")
	}
	if !taskType.IsTimed() && req.TimerMinutes != nil {
		return errors.New("timer_minutes only applies to timed tasks")
	}
	if entity.TaskCategory(req.Category) == entity.TaskCategoryExpected && (req.Points > 0 || req.BonusPoints > 0) {
		return errors.New("expected tasks do not award points")
	}
	return nil
}

func (ts *TasksService) CreateTask(ctx context.Context, ownerID uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := checkTaskConfig(req); err != nil {
		return nil, err
	}
	family, err := ts.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	t := entity.Task{
		FamilyID:           family.ID,
		Title:              req.Title,
		Description:        req.Description,
		Category:           entity.TaskCategory(req.Category),
		Type:               entity.TaskType(req.Type),
		Points:             req.Points,
		BonusPoints:        req.BonusPoints,
		TimerMinutes:       req.TimerMinutes,
		RequiresApproval:   req.RequiresApproval,
		CountsTowardStreak: req.CountsTowardStreak,
		IsActive:           true,
	}
	id, err := ts.tasksRepo.Create(ctx, &t)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) GetTasks(ctx context.Context, ownerID uuid.UUID, includeInactive bool) ([]*entity.Task, error) {
	family, err := ts.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	tasks, err := ts.tasksRepo.GetByFamilyID(ctx, family.ID, includeInactive)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) familyTask(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error) {
	family, err := ts.familiesRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFamilyNotFound) {
			return nil, err
		}
		return nil, errors.New("families repository error: " + err.Error())
	}
	task, err := ts.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if task.FamilyID != family.ID {
		return nil, errorvalues.ErrWrongFamily
	}
	return task, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := checkTaskConfig(&req.CreateTaskRequest); err != nil {
		return nil, err
	}
	task, err := ts.familyTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	task.Title = req.Title
	task.Description = req.Description
	task.Category = entity.TaskCategory(req.Category)
	task.Type = entity.TaskType(req.Type)
	task.Points = req.Points
	task.BonusPoints = req.BonusPoints
	task.TimerMinutes = req.TimerMinutes
	task.RequiresApproval = req.RequiresApproval
	task.CountsTowardStreak = req.CountsTowardStreak
	task.IsActive = req.IsActive
	err = ts.tasksRepo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	task, err := ts.familyTask(ctx, ownerID, taskID)
	if err != nil {
		return err
	}
	err = ts.tasksRepo.Delete(ctx, task.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}
