package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	p.ID = uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, user_id, title, description, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Title, p.Description, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, status, created_at, updated_at
		 FROM projects
		 WHERE id = $1`, id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select project: %w", err)
	}
	return &p, nil
}

// CountByOwner counts the owner's projects, optionally narrowed by a
// case-insensitive substring match on title or description.
func (r *ProjectRepository) CountByOwner(ctx context.Context, ownerID, search string) (int, error) {
	query := `SELECT COUNT(*) FROM projects WHERE user_id = $1`
	args := []any{ownerID}
	if search != "" {
		query += searchClause
		args = append(args, likePattern(search))
	}

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

// ListByOwner returns a page of the owner's projects, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID, search string, limit, offset int) ([]*domain.Project, error) {
	query := `SELECT id, user_id, title, description, status, created_at, updated_at
		 FROM projects
		 WHERE user_id = $1`
	args := []any{ownerID}
	if search != "" {
		query += searchClause
		args = append(args, likePattern(search))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	res := []*domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, status = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at`,
		p.Title, p.Description, p.Status, p.ID,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// searchClause matches the term against title or description. Hyphens are
// ignored on both sides so "ecommerce" finds "E-Commerce".
const searchClause = ` AND (replace(title, '-', '') ILIKE $2 OR replace(description, '-', '') ILIKE $2)`

// likePattern wraps a search term for ILIKE, dropping hyphens to mirror
// searchClause and escaping metacharacters so input matches literally.
func likePattern(search string) string {
	search = strings.ReplaceAll(search, "-", "")
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
	return "%" + escaped + "%"
}
