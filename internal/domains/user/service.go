package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the user business-logic contract consumed by the handler.
type Service interface {
	// Create validates the registration before touching the store.
	Create(ctx context.Context, req *CreateUserRequest) (uuid.UUID, error)
}
