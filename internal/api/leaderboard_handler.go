package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strive/backend/internal/service"
)

// LeaderboardHandler holds the leaderboard service dependency.
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Get the leaderboards
// @Description Returns the overview (total weight lifted) and max-lift boards over all accounts. Empty boards, not an error, when no accounts exist.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} domain.Leaderboard "Ranked boards"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	leaderboard, err := h.leaderboardService.GetLeaderboard(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build leaderboard.")
		return
	}
	c.JSON(http.StatusOK, leaderboard)
}
