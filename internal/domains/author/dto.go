package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"midnight-library/internal/domains/author/model"
	rules "midnight-library/internal/shared/validation"
)

// Field limits, counted in Unicode code points.
const (
	MaxNameLength        = 256
	MaxNationalityLength = 80
)

// CreateAuthorRequest - POST /authors/create
type CreateAuthorRequest struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

// Validate checks the fields in declaration order and reports the first
// rejection only.
func (r CreateAuthorRequest) Validate() error {
	return rules.First(
		validation.Validate(r.Name, validation.By(rules.NotBlankMax("author name", MaxNameLength))),
		validation.Validate(r.Nationality, validation.By(rules.NotBlankMax("author nationality", MaxNationalityLength))),
	)
}

// DeleteAuthorRequest - POST /authors/delete
type DeleteAuthorRequest struct {
	ID string `json:"id"`
}

// AuthorResponse - list/show representation
type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateAuthorResponse - creation confirmation
type CreateAuthorResponse struct {
	Message  string    `json:"message"`
	AuthorID uuid.UUID `json:"author_id"`
}

// ToResponse converts the entity to its API representation.
func ToResponse(a *model.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}
}
