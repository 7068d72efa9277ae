package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/book/model"
	rules "midnight-library/internal/shared/validation"
)

// Field limits, counted in Unicode code points.
const (
	MaxTitleLength = 256
	MaxGenreLength = 80
)

// CreateBookRequest - POST /books/create. The author is referenced by name
// and resolved to an id at creation time.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// Validate checks the fields in declaration order and reports the first
// rejection only. The author reference is held to the same rules as an
// author name.
func (r CreateBookRequest) Validate() error {
	return rules.First(
		validation.Validate(r.Title, validation.By(rules.NotBlankMax("book title", MaxTitleLength))),
		validation.Validate(r.Author, validation.By(rules.NotBlankMax("author name", author.MaxNameLength))),
		validation.Validate(r.Genre, validation.By(rules.NotBlankMax("book genre", MaxGenreLength))),
	)
}

// DeleteBookRequest - POST /books/delete
type DeleteBookRequest struct {
	ID string `json:"id"`
}

// BookResponse - list/show representation; author is the author's name.
type BookResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookResponse - creation confirmation
type CreateBookResponse struct {
	Message string    `json:"message"`
	BookID  uuid.UUID `json:"book_id"`
}

// ToResponse converts the entity (with joined author name) to its API
// representation.
func ToResponse(b *model.Book) *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.AuthorName,
		Genre:     b.Genre,
		CreatedAt: b.CreatedAt,
	}
}
