package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/service"
	"github.com/placementhub/placement-mentor-hub/pkg/response"
	"github.com/placementhub/placement-mentor-hub/pkg/validator"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(service service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

func (h *ProgressHandler) Record(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.RecordProgressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	progress, err := h.service.Record(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": progress})
}

func (h *ProgressHandler) List(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	progress, err := h.service.ListForStudent(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": progress})
}

func (h *ProgressHandler) UpdateStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.UpdateStudentStatsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	student, err := h.service.UpdateStats(c.Request.Context(), userID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": student})
}
