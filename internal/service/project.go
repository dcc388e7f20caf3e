package service

import (
	"context"

	"taskboard/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ProjectStore is the persistence contract the project service relies on.
type ProjectStore interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	CountByOwner(ctx context.Context, ownerID, search string) (int, error)
	ListByOwner(ctx context.Context, ownerID, search string, limit, offset int) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectService struct {
	repo ProjectStore
}

func NewProjectService(repo ProjectStore) *ProjectService {
	return &ProjectService{repo: repo}
}

type CreateProjectInput struct {
	Title       string
	Description string
	Status      domain.ProjectStatus
}

// UpdateProjectInput carries a partial update; nil fields are left as-is.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Status      *domain.ProjectStatus
}

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Projects   []*domain.Project `json:"projects"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

func (s *ProjectService) Create(ctx context.Context, ownerID string, in CreateProjectInput) (*domain.Project, error) {
	status := in.Status
	if status == "" {
		status = domain.ProjectActive
	}

	p := &domain.Project{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*domain.Project, error) {
	return requireOwner(ctx, s.repo.GetByID, id, ownerID)
}

// List returns the owner's projects, newest first, one page at a time.
// Pages are 1-indexed; a page past the end yields an empty list rather
// than an error.
func (s *ProjectService) List(ctx context.Context, ownerID string, page, limit int, search string) (*ProjectPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total, err := s.repo.CountByOwner(ctx, ownerID, search)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.ListByOwner(ctx, ownerID, search, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &ProjectPage{
		Projects:   projects,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Update applies a partial update after the ownership check. Only fields
// present in the input change; concurrent updates are last-write-wins.
func (s *ProjectService) Update(ctx context.Context, id, ownerID string, in UpdateProjectInput) (*domain.Project, error) {
	p, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project after the ownership check. Deleting the same
// id again fails with domain.ErrNotFound. Tasks referencing the project
// are left untouched.
func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
