package service

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/author/model"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorResponse, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]author.AuthorResponse, 0, len(authors))
	for i := range authors {
		responses = append(responses, *author.ToResponse(&authors[i]))
	}
	return responses, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.AuthorResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return author.ToResponse(a), nil
}

// Create validates first; the store is never touched on a rejection.
func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.repo.Create(ctx, &model.Author{
		Name:        req.Name,
		Nationality: req.Nationality,
	})
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}
