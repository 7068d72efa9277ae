package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/author/model"
	"midnight-library/internal/domains/author/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
}

type fakeAuthorRepo struct {
	authors []model.Author

	createdID uuid.UUID
	createErr error

	deleteRows int64
	deleteErr  error

	listErr error
}

func (f *fakeAuthorRepo) List(ctx context.Context) ([]model.Author, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.authors, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	for i := range f.authors {
		if f.authors[i].ID == id {
			return &f.authors[i], nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) GetByName(ctx context.Context, name string) (*model.Author, error) {
	for i := range f.authors {
		if f.authors[i].Name == name {
			return &f.authors[i], nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return f.createdID, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.deleteRows, f.deleteErr
}

func newAuthorRouter(repo *fakeAuthorRepo) *gin.Engine {
	h := NewAuthorHandler(service.NewAuthorService(repo))

	router := gin.New()
	router.GET("/authors", h.Index)
	router.GET("/authors/:id", h.Show)
	router.POST("/authors/create", h.Create)
	router.POST("/authors/delete", h.Delete)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthorIndex(t *testing.T) {
	id := uuid.MustParse("b4f7c2a0-0000-0000-0000-000000000001")
	router := newAuthorRouter(&fakeAuthorRepo{authors: []model.Author{
		{ID: id, Name: "JRR Tolkien", Nationality: "British"},
	}})

	w := doRequest(router, http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":"b4f7c2a0-0000-0000-0000-000000000001","name":"JRR Tolkien","nationality":"British","created_at":"0001-01-01T00:00:00Z"}]`,
		w.Body.String())
}

func TestAuthorIndexEmpty(t *testing.T) {
	router := newAuthorRouter(&fakeAuthorRepo{})

	w := doRequest(router, http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAuthorIndexStoreFailure(t *testing.T) {
	router := newAuthorRouter(&fakeAuthorRepo{listErr: errors.New("connection refused")})

	w := doRequest(router, http.MethodGet, "/authors", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", w.Body.String())
}

func TestAuthorShow(t *testing.T) {
	id := uuid.MustParse("b4f7c2a0-0000-0000-0000-000000000001")
	router := newAuthorRouter(&fakeAuthorRepo{authors: []model.Author{
		{ID: id, Name: "JRR Tolkien", Nationality: "British"},
	}})

	t.Run("known id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/authors/"+id.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":"b4f7c2a0-0000-0000-0000-000000000001","name":"JRR Tolkien","nationality":"British","created_at":"0001-01-01T00:00:00Z"}`,
			w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/authors/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unparseable id", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/authors/not-a-uuid", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorCreate(t *testing.T) {
	id := uuid.MustParse("b4f7c2a0-0000-0000-0000-000000000002")
	router := newAuthorRouter(&fakeAuthorRepo{createdID: id})

	w := doRequest(router, http.MethodPost, "/authors/create",
		`{"name":"JRR Tolkien","nationality":"British"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"message":"Author created successfully!","author_id":"b4f7c2a0-0000-0000-0000-000000000002"}`,
		w.Body.String())
}

func TestAuthorCreateRejections(t *testing.T) {
	router := newAuthorRouter(&fakeAuthorRepo{})

	t.Run("blank name", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/authors/create",
			`{"name":"","nationality":"British"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "'' is not a valid author name.", w.Body.String())
	})

	t.Run("blank nationality", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/authors/create",
			`{"name":"JRR Tolkien","nationality":"  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "'  ' is not a valid author nationality.", w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/authors/create", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := doRequest(router, http.MethodPost, "/authors/create",
			`{"name":"JRR Tolkien","nationality":"British","born":1892}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorCreateStoreFailure(t *testing.T) {
	router := newAuthorRouter(&fakeAuthorRepo{createErr: errors.New("connection refused")})

	w := doRequest(router, http.MethodPost, "/authors/create",
		`{"name":"JRR Tolkien","nationality":"British"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", w.Body.String())
}

func TestAuthorDelete(t *testing.T) {
	t.Run("existing author", func(t *testing.T) {
		router := newAuthorRouter(&fakeAuthorRepo{deleteRows: 1})

		w := doRequest(router, http.MethodPost, "/authors/delete",
			`{"id":"`+uuid.NewString()+`"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Author deleted successfully!"}`, w.Body.String())
	})

	t.Run("missing author", func(t *testing.T) {
		router := newAuthorRouter(&fakeAuthorRepo{deleteRows: 0})

		w := doRequest(router, http.MethodPost, "/authors/delete",
			`{"id":"`+uuid.NewString()+`"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Author not found."}`, w.Body.String())
	})

	t.Run("unparseable id", func(t *testing.T) {
		router := newAuthorRouter(&fakeAuthorRepo{deleteRows: 0})

		w := doRequest(router, http.MethodPost, "/authors/delete", `{"id":"not-a-uuid"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Author not found."}`, w.Body.String())
	})

	t.Run("author still referenced by books", func(t *testing.T) {
		router := newAuthorRouter(&fakeAuthorRepo{deleteErr: author.ErrAuthorHasBooks})

		w := doRequest(router, http.MethodPost, "/authors/delete",
			`{"id":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "cannot delete author with linked books", w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		router := newAuthorRouter(&fakeAuthorRepo{deleteErr: errors.New("connection refused")})

		w := doRequest(router, http.MethodPost, "/authors/delete",
			`{"id":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
