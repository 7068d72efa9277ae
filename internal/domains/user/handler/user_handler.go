package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"midnight-library/internal/domains/user"
	"midnight-library/internal/shared/response"
	rules "midnight-library/internal/shared/validation"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// Create - POST /users/create
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
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

	response.JSON(c, http.StatusOK, user.CreateUserResponse{
		Message: "User created successfully!",
		UserID:  id,
	})
}
