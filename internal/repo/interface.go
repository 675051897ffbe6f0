package repo

import (
	"context"

	"github.com/XonLoke/project-tracker/internal/model"
)

// TaskRepository is the storage contract for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Delete(ctx context.Context, id int64) error
	GetWithProgress(ctx context.Context, id int64) (model.TaskWithProgress, error)
}
