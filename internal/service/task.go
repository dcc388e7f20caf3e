package service

import (
	"context"
	"time"

	"taskboard/internal/domain"
)

// TaskStore is the persistence contract the task service relies on.
type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID, projectID string, status domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type TaskService struct {
	repo TaskStore
}

func NewTaskService(repo TaskStore) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	DueDate     time.Time
	ProjectID   string
}

// UpdateTaskInput carries a partial update; nil fields are left as-is.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	DueDate     *time.Time
}

// TaskFilter narrows a task listing; empty fields match everything.
type TaskFilter struct {
	ProjectID string
	Status    domain.TaskStatus
}

// Create persists a task for the owner. The project reference is taken
// as-is: it is not checked against the projects table.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*domain.Task, error) {
	status := in.Status
	if status == "" {
		status = domain.TaskTodo
	}

	t := &domain.Task{
		UserID:      ownerID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		DueDate:     in.DueDate,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	return requireOwner(ctx, s.repo.GetByID, id, ownerID)
}

// List returns the owner's tasks, newest first, optionally filtered.
func (s *TaskService) List(ctx context.Context, ownerID string, filter TaskFilter) ([]*domain.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID, filter.ProjectID, filter.Status)
}

// Update applies a partial update after the ownership check. Only fields
// present in the input change; concurrent updates are last-write-wins.
func (s *TaskService) Update(ctx context.Context, id, ownerID string, in UpdateTaskInput) (*domain.Task, error) {
	t, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the task after the ownership check. Deleting the same id
// again fails with domain.ErrNotFound.
func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
