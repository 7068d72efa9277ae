package service

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/user"
	"midnight-library/internal/domains/user/model"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// Create validates first; the store is never touched on a rejection.
func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.repo.Create(ctx, &model.User{
		Name:  req.Name,
		Email: req.Email,
	})
}
