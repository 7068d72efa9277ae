package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"midnight-library/internal/domains/author"
	"midnight-library/internal/shared/response"
	rules "midnight-library/internal/shared/validation"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Index - GET /authors
func (h *AuthorHandler) Index(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Text(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// Show - GET /authors/:id
//
// An unparseable id degrades to uuid.Nil, which matches no row, so it falls
// into the normal not-found path instead of a decode error.
func (h *AuthorHandler) Show(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		id = uuid.Nil
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.Text(c, http.StatusNotFound, err.Error())
		} else {
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Create - POST /authors/create
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if rules.IsFieldError(err) {
			response.Text(c, http.StatusBadRequest, err.Error())
		} else {
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.JSON(c, http.StatusOK, author.CreateAuthorResponse{
		Message:  "Author created successfully!",
		AuthorID: id,
	})
}

// Delete - POST /authors/delete
func (h *AuthorHandler) Delete(c *gin.Context) {
	var req author.DeleteAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		id = uuid.Nil
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, author.ErrAuthorNotFound):
			response.Message(c, http.StatusNotFound, "Author not found.")
		case errors.Is(err, author.ErrAuthorHasBooks):
			response.Text(c, http.StatusConflict, err.Error())
		default:
			response.Text(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Message(c, http.StatusOK, "Author deleted successfully!")
}
