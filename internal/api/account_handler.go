package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"strive/backend/internal/domain"
	"strive/backend/internal/service"
)

// AccountHandler holds the account service dependency.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// AccountResponse is the external representation of an account: the raw
// document shape the frontend reads, with the store's native ObjectID
// stringified under its `_id` key.
type AccountResponse struct {
	ID          string            `json:"_id"`
	Email       string            `json:"email"`
	Username    string            `json:"username"`
	Name        string            `json:"name"`
	Workouts    []ExercisePayload `json:"workouts"`
	MaxBench    float64           `json:"maxBench"`
	MaxSquat    float64           `json:"maxSquat"`
	MaxDeadlift float64           `json:"maxDeadlift"`
	TotalWeight float64           `json:"totalWeight"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new account
// @Description Creates a new account with zero-valued lift maxima. Does NOT reject duplicate emails or usernames (preserved behavior, see README).
// @Tags Accounts
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration details"
// @Success 201 {object} AccountResponse "Account created"
// @Failure 400 {object} gin.H "Invalid input (validation error, e.g. malformed email)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req.Email, req.Username, req.Name)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		return
	}

	c.JSON(http.StatusCreated, MapAccountToResponse(account))
}

// Login godoc
// @Summary Log in by name and email
// @Description Looks up the account whose name AND email both match. This is an identity claim, not authentication: no credentials exist. A miss is a 200 response carrying an error field, not an HTTP error (preserved product decision).
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Name and email"
// @Success 200 {object} LoginResponse "Login successful (or soft not-found payload)"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	account, err := h.accountService.Login(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			// Soft failure: a successful response whose payload signals the
			// miss. The frontend inspects the error field.
			c.JSON(http.StatusOK, gin.H{"error": "User not found. Check your name and email."})
			return
		}
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful!",
		User:    MapAccountToResponse(account),
	})
}

// MapAccountToResponse converts a domain Account to its DTO, converting the
// ObjectID to its hex string.
func MapAccountToResponse(account *domain.Account) AccountResponse {
	if account == nil {
		return AccountResponse{}
	}
	return AccountResponse{
		ID:          account.ID.Hex(),
		Email:       account.Email,
		Username:    account.Username,
		Name:        account.Name,
		Workouts:    MapExercisesToPayload(account.Workouts),
		MaxBench:    account.MaxBench,
		MaxSquat:    account.MaxSquat,
		MaxDeadlift: account.MaxDeadlift,
		TotalWeight: account.TotalWeight,
	}
}
