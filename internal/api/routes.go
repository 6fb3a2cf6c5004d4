package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"strive/backend/internal/service"
)

// SetupRoutes registers the CORS policy and all API routes on the router.
// One handler per operation; duplicate route iterations from earlier schema
// versions were consolidated here.
func SetupRoutes(
	router *gin.Engine,
	allowedOrigins []string,
	accountService service.AccountService,
	workoutService service.WorkoutService,
	leaderboardService service.LeaderboardService,
) {
	accountHandler := NewAccountHandler(accountService)
	workoutHandler := NewWorkoutHandler(workoutService)
	leaderboardHandler := NewLeaderboardHandler(leaderboardService)

	router.Use(CORSMiddleware(allowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Strive API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)
	router.POST("/stats", workoutHandler.SubmitWorkout)
	router.GET("/workouts/:userId", workoutHandler.GetWorkouts)
	router.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
}
