package user

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/user/model"
)

// Repository is the user persistence contract.
type Repository interface {
	// Create inserts a row and returns the generated id.
	Create(ctx context.Context, u *model.User) (uuid.UUID, error)
}
