package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/domains/book"
	"midnight-library/internal/shared/response"
	rules "midnight-library/internal/shared/validation"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// Index - GET /books
func (h *BookHandler) Index(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Text(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// Show - GET /books/:id
func (h *BookHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		id = uuid.Nil
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Text(c, http.StatusNotFound, err.Error())
		} else {
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Create - POST /books/create
//
// A rejected field and an unresolvable author name are both the client's
// fault: the request cannot succeed as written, so they map to 400.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if rules.IsFieldError(err) || errors.Is(err, author.ErrAuthorNotFound) {
			response.Text(c, http.StatusBadRequest, err.Error())
		} else {
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(c, http.StatusOK, book.CreateBookResponse{
		Message: "Book created successfully!",
		BookID:  id,
	})
}

// Delete - POST /books/delete
func (h *BookHandler) Delete(c *gin.Context) {
	var req book.DeleteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		id = uuid.Nil
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.Message(c, http.StatusNotFound, "Book not found.")
		} else {
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully!")
}
