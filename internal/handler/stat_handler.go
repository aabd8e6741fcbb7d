package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/placementhub/placement-mentor-hub/internal/repository"
	"github.com/placementhub/placement-mentor-hub/internal/service"
	"github.com/placementhub/placement-mentor-hub/pkg/response"
)

// StatHandler serves the student-facing aggregate views: the stats
// snapshot, unlocked badges and the consistency leaderboard.
type StatHandler struct {
	badgeService       service.BadgeService
	leaderboardService service.LeaderboardService
	studentRepo        repository.StudentRepository
}

func NewStatHandler(
	badgeService service.BadgeService,
	leaderboardService service.LeaderboardService,
	studentRepo repository.StudentRepository,
) *StatHandler {
	return &StatHandler{
		badgeService:       badgeService,
		leaderboardService: leaderboardService,
		studentRepo:        studentRepo,
	}
}

func (h *StatHandler) GetStudentStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	student, err := h.studentRepo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	badges, err := h.badgeService.ListByStudent(c.Request.Context(), student.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"student": student,
		"badges":  badges,
	}})
}

func (h *StatHandler) ListBadges(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	student, err := h.studentRepo.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	badges, err := h.badgeService.ListByStudent(c.Request.Context(), student.ID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": badges})
}

func (h *StatHandler) GetLeaderboard(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	entries, err := h.leaderboardService.Top(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
