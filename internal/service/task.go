package service

import (
	"context"
	"errors"

	"github.com/XonLoke/project-tracker/internal/model"
	"github.com/XonLoke/project-tracker/internal/repo"
)

// ErrMissingFields is returned when a create/update body omits any of
// the four required task fields.
var ErrMissingFields = errors.New("missing required fields")

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	t, err := s.validate(in)
	if err != nil {
		return t, err
	}
	return s.repo.Create(ctx, t)
}

func (s *TaskService) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	t, err := s.validate(in)
	if err != nil {
		return t, err
	}
	t.ID = id
	return s.repo.Update(ctx, t)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) GetWithProgress(ctx context.Context, id int64) (model.TaskWithProgress, error) {
	return s.repo.GetWithProgress(ctx, id)
}

// validate checks that all four required fields are present. Presence
// is the contract; empty strings and zero points are accepted.
func (s *TaskService) validate(in model.TaskInput) (model.Task, error) {
	if in.Name == nil || in.Description == nil || in.Points == nil || in.ImageURL == nil {
		return model.Task{}, ErrMissingFields
	}
	return model.Task{
		Name:        *in.Name,
		Description: *in.Description,
		Points:      *in.Points,
		ImageURL:    *in.ImageURL,
	}, nil
}
