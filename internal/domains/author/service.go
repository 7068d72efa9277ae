package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the author business-logic contract consumed by the handler.
type Service interface {
	List(ctx context.Context) ([]AuthorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)

	// Create validates the request before touching the store. A validation
	// rejection is returned as-is so the handler can surface its text.
	Create(ctx context.Context, req *CreateAuthorRequest) (uuid.UUID, error)

	// Delete returns ErrAuthorNotFound when no row was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
