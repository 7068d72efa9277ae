package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"midnight-library/internal/domains/user"
	"midnight-library/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (uuid.UUID, error) {
	query := `
        INSERT INTO users (name, email)
        VALUES ($1, $2)
        RETURNING id
    `

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, u.Name, u.Email).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}
