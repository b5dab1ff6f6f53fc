// Package article implements the Article repository using PostgreSQL.
package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/articlehub/backend/internal/adapter/postgres"
	"github.com/articlehub/backend/internal/domain"
)

const table = "articles"

var columns = []string{"id", "owner_id", "title", "content", "created_at", "updated_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new article repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an article by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query, args, err := builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	a, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err, "article", id)
	}
	return a, nil
}

// List returns all articles ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Article, error) {
	query, args, err := builder.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "article", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, mapError(err, "article", uuid.Nil)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "article", uuid.Nil)
	}

	return out, nil
}

// Create inserts a new article and returns the persisted domain.Article.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	query, args, err := builder.Insert(table).
		Columns("id", "owner_id", "title", "content").
		Values(a.ID, a.OwnerID, a.Title, a.Content).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	created, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err, "article", a.ID)
	}
	return created, nil
}

// Update applies the given partial update to an article. Nil fields are
// left unchanged. Returns ErrNotFound if the article does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ArticleUpdateParams) (*domain.Article, error) {
	update := builder.Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Content != nil {
		update = update.Set("content", *params.Content)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	updated, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err, "article", id)
	}
	return updated, nil
}

// Delete removes an article by primary key.
// Returns ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "article", id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "article", id)
	}

	return nil
}

// scanArticle reads one article row in the column order of columns.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.OwnerID, &a.Title, &a.Content, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
