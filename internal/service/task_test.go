package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskStore struct {
	tasks  []*domain.Task
	nextID int
	now    time.Time
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{now: time.Now()}
}

func (f *fakeTaskStore) Create(ctx context.Context, t *domain.Task) error {
	f.nextID++
	t.ID = fmt.Sprintf("task-%d", f.nextID)
	f.now = f.now.Add(time.Second)
	t.CreatedAt = f.now
	t.UpdatedAt = f.now
	cp := *t
	f.tasks = append(f.tasks, &cp)
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, ownerID, projectID string, status domain.TaskStatus) ([]*domain.Task, error) {
	res := []*domain.Task{}
	for i := len(f.tasks) - 1; i >= 0; i-- {
		t := f.tasks[i]
		if t.UserID != ownerID {
			continue
		}
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, t *domain.Task) error {
	for i, existing := range f.tasks {
		if existing.ID == t.ID {
			cp := *t
			cp.CreatedAt = existing.CreatedAt
			cp.UpdatedAt = time.Now()
			f.tasks[i] = &cp
			t.UpdatedAt = cp.UpdatedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeTaskStore) Delete(ctx context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func dueDate() time.Time {
	return time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
}

func TestTaskCreateDefaults(t *testing.T) {
	s := NewTaskService(newFakeTaskStore())

	task, err := s.Create(context.Background(), "user-a", CreateTaskInput{
		Title:       "Write docs",
		Description: "cover the API surface",
		DueDate:     dueDate(),
		ProjectID:   "project-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskTodo, task.Status)
	assert.Equal(t, "user-a", task.UserID)
	assert.Equal(t, "project-1", task.ProjectID)
}

func TestTaskListFilters(t *testing.T) {
	s := NewTaskService(newFakeTaskStore())
	ctx := context.Background()

	mk := func(project string, status domain.TaskStatus) {
		t.Helper()
		_, err := s.Create(ctx, "user-a", CreateTaskInput{
			Title:       "t",
			Description: "d",
			Status:      status,
			DueDate:     dueDate(),
			ProjectID:   project,
		})
		require.NoError(t, err)
	}

	mk("project-1", domain.TaskTodo)
	mk("project-1", domain.TaskDone)
	mk("project-2", domain.TaskTodo)

	all, err := s.List(ctx, "user-a", TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProject, err := s.List(ctx, "user-a", TaskFilter{ProjectID: "project-1"})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byStatus, err := s.List(ctx, "user-a", TaskFilter{Status: domain.TaskTodo})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	both, err := s.List(ctx, "user-a", TaskFilter{ProjectID: "project-1", Status: domain.TaskDone})
	require.NoError(t, err)
	assert.Len(t, both, 1)

	other, err := s.List(ctx, "user-b", TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

// Updating only the status must leave title, description and due date
// untouched.
func TestTaskPartialUpdate(t *testing.T) {
	s := NewTaskService(newFakeTaskStore())
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", CreateTaskInput{
		Title:       "Original",
		Description: "original description",
		DueDate:     dueDate(),
		ProjectID:   "project-1",
	})
	require.NoError(t, err)

	done := domain.TaskDone
	updated, err := s.Update(ctx, created.ID, "user-a", UpdateTaskInput{Status: &done})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskDone, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	assert.True(t, updated.DueDate.Equal(dueDate()))
}

func TestTaskOwnership(t *testing.T) {
	s := NewTaskService(newFakeTaskStore())
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", CreateTaskInput{
		Title:       "Private",
		Description: "d",
		DueDate:     dueDate(),
		ProjectID:   "project-1",
	})
	require.NoError(t, err)

	_, err = s.Get(ctx, created.ID, "user-b")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, s.Delete(ctx, created.ID, "user-b"), domain.ErrForbidden)

	_, err = s.Get(ctx, "missing", "user-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskDeleteTwice(t *testing.T) {
	s := NewTaskService(newFakeTaskStore())
	ctx := context.Background()

	created, err := s.Create(ctx, "user-a", CreateTaskInput{
		Title:       "Ephemeral",
		Description: "d",
		DueDate:     dueDate(),
		ProjectID:   "project-1",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, created.ID, "user-a"))
	assert.ErrorIs(t, s.Delete(ctx, created.ID, "user-a"), domain.ErrNotFound)
}
