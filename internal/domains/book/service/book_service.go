package service

import (
	"context"

	"github.com/google/uuid"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/book"
	"midnight-library/internal/domains/book/model"
)

// bookService composes validation, the author resolver and the book store.
type bookService struct {
	repo    book.Repository
	authors author.Repository
}

func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.BookResponse, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]book.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, *book.ToResponse(&books[i]))
	}
	return responses, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return book.ToResponse(b), nil
}

// Create validates, resolves the author by exact name, then inserts. Nothing
// is written when validation or resolution fails.
func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	a, err := s.authors.GetByName(ctx, req.Author)
	if err != nil {
		return uuid.Nil, err
	}

	return s.repo.Create(ctx, &model.Book{
		Title:    req.Title,
		AuthorID: a.ID,
		Genre:    req.Genre,
	})
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
