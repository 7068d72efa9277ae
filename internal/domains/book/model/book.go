package model

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Genre     string    `json:"genre" db:"genre"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Joined data, populated by list/show queries only.
	AuthorName string `json:"author_name" db:"author_name"`
}
