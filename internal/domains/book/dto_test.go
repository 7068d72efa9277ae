package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnight-library/internal/domains/book/model"

	"github.com/google/uuid"
)

func TestCreateBookRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateBookRequest
		wantErr string
	}{
		{
			name: "valid book",
			req:  CreateBookRequest{Title: "The Hobbit", Author: "JRR Tolkien", Genre: "Fiction"},
		},
		{
			name: "title at max length",
			req:  CreateBookRequest{Title: strings.Repeat("a", 256), Author: "JRR Tolkien", Genre: "Fiction"},
		},
		{
			name:    "title over max length",
			req:     CreateBookRequest{Title: strings.Repeat("a", 257), Author: "JRR Tolkien", Genre: "Fiction"},
			wantErr: "'" + strings.Repeat("a", 257) + "' is not a valid book title.",
		},
		{
			name:    "whitespace only title",
			req:     CreateBookRequest{Title: " ", Author: "JRR Tolkien", Genre: "Fiction"},
			wantErr: "' ' is not a valid book title.",
		},
		{
			name:    "empty author reference",
			req:     CreateBookRequest{Title: "The Hobbit", Author: "", Genre: "Fiction"},
			wantErr: "'' is not a valid author name.",
		},
		{
			name: "genre at max length",
			req:  CreateBookRequest{Title: "The Hobbit", Author: "JRR Tolkien", Genre: strings.Repeat("a", 80)},
		},
		{
			name:    "genre over max length",
			req:     CreateBookRequest{Title: "The Hobbit", Author: "JRR Tolkien", Genre: strings.Repeat("a", 81)},
			wantErr: "'" + strings.Repeat("a", 81) + "' is not a valid book genre.",
		},
		{
			name:    "empty genre",
			req:     CreateBookRequest{Title: "The Hobbit", Author: "JRR Tolkien", Genre: ""},
			wantErr: "'' is not a valid book genre.",
		},
		{
			name:    "everything invalid reports title first",
			req:     CreateBookRequest{Title: "", Author: "", Genre: ""},
			wantErr: "'' is not a valid book title.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestToResponseUsesJoinedAuthorName(t *testing.T) {
	b := &model.Book{
		ID:         uuid.New(),
		Title:      "The Hobbit",
		AuthorID:   uuid.New(),
		Genre:      "Fiction",
		AuthorName: "JRR Tolkien",
	}

	resp := ToResponse(b)

	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "The Hobbit", resp.Title)
	assert.Equal(t, "JRR Tolkien", resp.Author)
	assert.Equal(t, "Fiction", resp.Genre)
}
