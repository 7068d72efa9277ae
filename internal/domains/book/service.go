package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the book business-logic contract consumed by the handler.
type Service interface {
	List(ctx context.Context) ([]BookResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookResponse, error)

	// Create validates the request, resolves the author reference by name,
	// then inserts. Validation rejections and author.ErrAuthorNotFound are
	// returned as-is for the handler to map.
	Create(ctx context.Context, req *CreateBookRequest) (uuid.UUID, error)

	// Delete returns ErrBookNotFound when no row was removed.
	Delete(ctx context.Context, id uuid.UUID) error
}
