package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/pkg/response"
)

// AdminHandler serves the admin-only overview endpoints.
type AdminHandler struct {
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
}

func NewAdminHandler(userRepo repository.UserRepository, studentRepo repository.StudentRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

func (h *AdminHandler) ListStudents(c *gin.Context) {
	students, err := h.studentRepo.FindAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": students})
}

func (h *AdminHandler) CountUsers(c *gin.Context) {
	count, err := h.userRepo.Count(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total_users": count}})
}
