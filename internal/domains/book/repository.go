package book

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/book/model"
)

// Repository is the book persistence contract. List and GetByID join the
// authors table so rows carry the author's name.
type Repository interface {
	List(ctx context.Context) ([]model.Book, error)

	// GetByID returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Create inserts a row and returns the generated id. The author id must
	// already be resolved; a dangling reference surfaces as an error, not a
	// panic.
	Create(ctx context.Context, b *model.Book) (uuid.UUID, error)

	// Delete removes by id and reports the affected-row count.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
