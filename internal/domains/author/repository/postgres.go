package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/author/model"
	"midnight-library/pkg/cache"
	"midnight-library/pkg/logger"
)

// foreignKeyViolation is the SQLSTATE raised when books still reference an
// author being deleted.
const foreignKeyViolation = "23503"

const (
	authorByIDKeyPrefix   = "author:id:"
	authorByNameKeyPrefix = "author:name:"
	authorCacheTTL        = 15 * time.Minute
)

// postgresRepository implements author.Repository with a cache-aside layer on
// the single-row lookups. Cache failures degrade to a store round trip.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// List returns every author in insertion order.
func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, nationality, created_at
        FROM authors
        ORDER BY created_at, id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Nationality, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorByIDKeyPrefix + id.String()

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warn("author cache get failed", err)
	} else if found {
		return &cached, nil
	}

	query := `
        SELECT id, name, nationality, created_at
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Nationality, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("get author by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, &a, authorCacheTTL); err != nil {
		logger.Warn("author cache set failed", err)
	}

	return &a, nil
}

// GetByName resolves an exact name match, oldest row first so duplicate
// names stay deterministic.
func (r *postgresRepository) GetByName(ctx context.Context, name string) (*model.Author, error) {
	cacheKey := authorByNameKeyPrefix + name

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Warn("author cache get failed", err)
	} else if found {
		return &cached, nil
	}

	query := `
        SELECT id, name, nationality, created_at
        FROM authors
        WHERE name = $1
        ORDER BY created_at, id
        LIMIT 1
    `

	var a model.Author
	err := r.pool.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name, &a.Nationality, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("get author by name: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, &a, authorCacheTTL); err != nil {
		logger.Warn("author cache set failed", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (uuid.UUID, error) {
	query := `
        INSERT INTO authors (name, nationality)
        VALUES ($1, $2)
        RETURNING id
    `

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, a.Name, a.Nationality).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert author: %w", err)
	}

	// A new duplicate never displaces the cached oldest match, but a cached
	// not-found is never stored either, so only the name key needs clearing.
	if err := r.cache.Delete(ctx, authorByNameKeyPrefix+a.Name); err != nil {
		logger.Warn("author cache invalidation failed", err)
	}

	return id, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM authors WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, author.ErrAuthorHasBooks
		}
		return 0, fmt.Errorf("delete author: %w", err)
	}

	if tag.RowsAffected() > 0 {
		if err := r.cache.DeletePattern(ctx, "author:*"); err != nil {
			logger.Warn("author cache invalidation failed", err)
		}
	}

	return tag.RowsAffected(), nil
}
