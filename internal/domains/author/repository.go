package author

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/author/model"
)

// Repository is the author persistence contract. GetByName doubles as the
// natural-key resolver used by book creation.
type Repository interface {
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// GetByName resolves an exact name match. Duplicate names are allowed;
	// the oldest author wins. Returns ErrAuthorNotFound on zero rows.
	GetByName(ctx context.Context, name string) (*model.Author, error)

	// Create inserts a row and returns the generated id.
	Create(ctx context.Context, a *model.Author) (uuid.UUID, error)

	// Delete removes by id and reports the affected-row count.
	// Returns ErrAuthorHasBooks when the row is still referenced.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
