package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/XonLoke/project-tracker/internal/model"
	"github.com/XonLoke/project-tracker/internal/repo"
)

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, t model.Task) (model.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) GetWithProgress(ctx context.Context, id int64) (model.TaskWithProgress, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.TaskWithProgress), args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validInput() model.TaskInput {
	return model.TaskInput{
		Name:        strPtr("Get groceries"),
		Description: strPtr("Get weekly groceries from supermarket"),
		Points:      intPtr(10),
		ImageURL:    strPtr("https://example.com/groceries.jpg"),
	}
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     model.TaskInput
		setupMock func(*MockTaskRepository)
		wantErr   error
	}{
		{
			name:  "successful creation",
			input: validInput(),
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
					return t.Name == "Get groceries" && t.Points == 10
				})).Return(model.Task{
					ID:          1,
					Name:        "Get groceries",
					Description: "Get weekly groceries from supermarket",
					Points:      10,
					ImageURL:    "https://example.com/groceries.jpg",
				}, nil)
			},
			wantErr: nil,
		},
		{
			name: "missing name",
			input: model.TaskInput{
				Description: strPtr("x"),
				Points:      intPtr(10),
				ImageURL:    strPtr("u"),
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrMissingFields,
		},
		{
			name: "missing description",
			input: model.TaskInput{
				Name:     strPtr("x"),
				Points:   intPtr(10),
				ImageURL: strPtr("u"),
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrMissingFields,
		},
		{
			name: "missing points",
			input: model.TaskInput{
				Name:        strPtr("x"),
				Description: strPtr("x"),
				ImageURL:    strPtr("u"),
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrMissingFields,
		},
		{
			name: "missing image_url",
			input: model.TaskInput{
				Name:        strPtr("x"),
				Description: strPtr("x"),
				Points:      intPtr(10),
			},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrMissingFields,
		},
		{
			name:      "empty body",
			input:     model.TaskInput{},
			setupMock: func(m *MockTaskRepository) {},
			wantErr:   ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			service := NewTaskService(mockRepo)
			result, err := service.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, result.ID)
			}

			// A rejected create must never reach storage.
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	t.Run("passes id through and replaces all fields", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(task model.Task) bool {
			return task.ID == 7 && task.Name == "Get groceries"
		})).Return(model.Task{
			ID:          7,
			Name:        "Get groceries",
			Description: "Get weekly groceries from supermarket",
			Points:      10,
			ImageURL:    "https://example.com/groceries.jpg",
		}, nil)

		service := NewTaskService(mockRepo)
		result, err := service.Update(context.Background(), 7, validInput())

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found propagates", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Update", mock.Anything, mock.Anything).
			Return(model.Task{}, repo.ErrorNotFound)

		service := NewTaskService(mockRepo)
		_, err := service.Update(context.Background(), 99999, validInput())

		assert.ErrorIs(t, err, repo.ErrorNotFound)
	})

	t.Run("missing fields never reach storage", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		service := NewTaskService(mockRepo)
		_, err := service.Update(context.Background(), 7, model.TaskInput{Name: strPtr("only name")})

		assert.ErrorIs(t, err, ErrMissingFields)
		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_List(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Task{}, nil)

	service := NewTaskService(mockRepo)
	tasks, err := service.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskService_Delete(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Delete", mock.Anything, int64(3)).Return(nil)
	mockRepo.On("Delete", mock.Anything, int64(99999)).Return(repo.ErrorNotFound)

	service := NewTaskService(mockRepo)

	require.NoError(t, service.Delete(context.Background(), 3))
	assert.ErrorIs(t, service.Delete(context.Background(), 99999), repo.ErrorNotFound)
}

func TestTaskService_GetWithProgress(t *testing.T) {
	username := "john_doe"
	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetWithProgress", mock.Anything, int64(1)).Return(model.TaskWithProgress{
		Task:     model.Task{ID: 1, Name: "Get groceries"},
		Progress: model.Progress{Username: &username},
	}, nil)

	service := NewTaskService(mockRepo)
	result, err := service.GetWithProgress(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "john_doe", *result.Progress.Username)
}

func TestTaskService_StorageErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	mockRepo := new(MockTaskRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Task(nil), boom)

	service := NewTaskService(mockRepo)
	_, err := service.List(context.Background())

	assert.ErrorIs(t, err, boom)
}
