package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"strive/backend/internal/domain"
	"strive/backend/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request/Response Structs ---

// ExercisePayload is the wire shape of one exercise entry, used in both
// requests and responses.
type ExercisePayload struct {
	ID       string  `json:"id"`
	BodyPart string  `json:"bodyPart" binding:"required"`
	Name     string  `json:"exercise" binding:"required"`
	Sets     int     `json:"sets" binding:"required,gt=0"`
	Reps     int     `json:"reps" binding:"required,gt=0"`
	Weight   float64 `json:"weight" binding:"gte=0"`
}

type SubmitWorkoutRequest struct {
	SessionTime int               `json:"sessionTime" binding:"gte=0"`
	Exercises   []ExercisePayload `json:"exercises" binding:"required,dive"`
	// TotalWeight is the client's own figure, stored for reference. The
	// account's running total is recomputed server-side.
	TotalWeight float64 `json:"totalWeight" binding:"gte=0"`
	Timestamp   string  `json:"timestamp" binding:"required"`
	UserID      string  `json:"userId" binding:"required"`
}

type WorkoutSessionResponse struct {
	ID          string            `json:"id"`
	SessionTime int               `json:"sessionTime"`
	Exercises   []ExercisePayload `json:"exercises"`
	TotalWeight float64           `json:"totalWeight"`
	Timestamp   string            `json:"timestamp"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type WorkoutHistoryResponse struct {
	UserID   string                   `json:"userId"`
	Count    int                      `json:"count"`
	Workouts []WorkoutSessionResponse `json:"workouts"`
}

// --- Handler Methods ---

// SubmitWorkout godoc
// @Summary Submit a workout session
// @Description Persists the session and atomically applies its stats (lift maxima, total weight) to the account.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param submission body SubmitWorkoutRequest true "Workout session"
// @Success 200 {object} gin.H "Workout saved"
// @Failure 400 {object} gin.H "Validation error or invalid user ID format"
// @Failure 404 {object} gin.H "Account not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /stats [post]
func (h *WorkoutHandler) SubmitWorkout(c *gin.Context) {
	var req SubmitWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// Reject a malformed reference before touching the store.
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	session := &domain.WorkoutSession{
		SessionTime: req.SessionTime,
		Exercises:   MapPayloadToExercises(req.Exercises),
		TotalWeight: req.TotalWeight,
		Timestamp:   req.Timestamp,
	}

	if err := h.workoutService.Submit(c.Request.Context(), userID, session); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			abortWithError(c, http.StatusNotFound, "Account not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save workout.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout saved successfully!"})
}

// GetWorkouts godoc
// @Summary Get an account's workout history
// @Description Returns all sessions logged by the account, newest first.
// @Tags Workouts
// @Produce json
// @Param userId path string true "Account's ObjectID hex"
// @Success 200 {object} WorkoutHistoryResponse "Workout history"
// @Failure 400 {object} gin.H "Invalid user ID format"
// @Failure 404 {object} gin.H "Account not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts/{userId} [get]
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userIDHex := c.Param("userId")
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	sessions, err := h.workoutService.History(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			abortWithError(c, http.StatusNotFound, "Account not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	c.JSON(http.StatusOK, WorkoutHistoryResponse{
		UserID:   userID.Hex(),
		Count:    len(sessions),
		Workouts: MapSessionsToResponse(sessions),
	})
}

// --- Mappers ---

func MapExercisesToPayload(exercises []domain.Exercise) []ExercisePayload {
	payload := make([]ExercisePayload, len(exercises))
	for i, ex := range exercises {
		payload[i] = ExercisePayload{
			ID:       ex.ID,
			BodyPart: ex.BodyPart,
			Name:     ex.Name,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
		}
	}
	return payload
}

func MapPayloadToExercises(payload []ExercisePayload) []domain.Exercise {
	exercises := make([]domain.Exercise, len(payload))
	for i, p := range payload {
		exercises[i] = domain.Exercise{
			ID:       p.ID,
			BodyPart: p.BodyPart,
			Name:     p.Name,
			Sets:     p.Sets,
			Reps:     p.Reps,
			Weight:   p.Weight,
		}
	}
	return exercises
}

func MapSessionsToResponse(sessions []domain.WorkoutSession) []WorkoutSessionResponse {
	resp := make([]WorkoutSessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = WorkoutSessionResponse{
			ID:          s.ID.Hex(),
			SessionTime: s.SessionTime,
			Exercises:   MapExercisesToPayload(s.Exercises),
			TotalWeight: s.TotalWeight,
			Timestamp:   s.Timestamp,
			CreatedAt:   s.CreatedAt,
		}
	}
	return resp
}
