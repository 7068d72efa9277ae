package author

import "errors"

var (
	// ErrAuthorNotFound covers both a missing id and a failed lookup by name.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrAuthorHasBooks is raised when a delete is refused because books
	// still reference the author.
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
)
