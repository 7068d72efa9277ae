package user

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	rules "midnight-library/internal/shared/validation"
)

// Field limits, counted in Unicode code points.
const (
	MaxNameLength  = 256
	MaxEmailLength = 90
)

// emailPattern follows the WHATWG valid-e-mail-address grammar: a permissive
// ASCII local part, then dot-separated domain labels of up to 63 alphanumeric
// or hyphen characters with no leading or trailing hyphen, and at least one
// dot in the domain. Non-ASCII input never matches.
// https://html.spec.whatwg.org/multipage/input.html#valid-e-mail-address
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])+)+$",
)

// CreateUserRequest - POST /users/create
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks the fields in declaration order and reports the first
// rejection only.
func (r CreateUserRequest) Validate() error {
	return rules.First(
		validation.Validate(r.Name, validation.By(rules.NotBlankMax("user name", MaxNameLength))),
		validation.Validate(r.Email, validation.By(rules.NotBlankMaxMatch("user email", MaxEmailLength, emailPattern))),
	)
}

// CreateUserResponse - registration confirmation
type CreateUserResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}
