package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/book"
	"midnight-library/internal/domains/book/model"
)

const foreignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// List returns every book in insertion order with the author name joined in.
func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, a.name AS author_name, b.genre, b.created_at
        FROM books b
        JOIN authors a ON b.author_id = a.id
        ORDER BY b.created_at, b.id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.Genre, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, a.name AS author_name, b.genre, b.created_at
        FROM books b
        JOIN authors a ON b.author_id = a.id
        WHERE b.id = $1
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.Genre, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (uuid.UUID, error) {
	query := `
        INSERT INTO books (title, author_id, genre)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, b.Title, b.AuthorID, b.Genre).Scan(&id); err != nil {
		// The author can vanish between resolution and insert; the FK
		// violation is reported as a missing reference, not a crash.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return uuid.Nil, author.ErrAuthorNotFound
		}
		return uuid.Nil, fmt.Errorf("insert book: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM books WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}

	return tag.RowsAffected(), nil
}
