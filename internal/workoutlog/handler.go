package workoutlog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pledgefit/internal/auth"
	"pledgefit/internal/email"
	"pledgefit/internal/logger"
	"pledgefit/internal/pledge"
	"pledgefit/internal/subscription"
	"pledgefit/internal/user"
	"pledgefit/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
	repo    Repository
}

func NewHandler(db *sqlx.DB, emailService *email.Service) *Handler {
	logRepo := NewRepository(db)
	svc := NewService(
		logRepo,
		subscription.NewRepository(db),
		workout.NewRepository(db),
		user.NewRepository(db),
		pledge.NewRepository(db),
		emailService,
	)
	return &Handler{service: svc, repo: logRepo}
}

// NewHandlerWithService wires an already-built service; used by tests.
func NewHandlerWithService(svc Service, repo Repository) *Handler {
	return &Handler{service: svc, repo: repo}
}

// CreateLog godoc
// @Summary      Log a workout
// @Description  Records a completed workout session. Rejected with 429 while
// @Description  the 18-hour cooldown from the previous log is still open.
// @Tags         workout-logs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      LogRequest  true  "Workout to log"
// @Success      201      {object}  WorkoutLog
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      429      {object}  api.CooldownErrorResponse
// @Failure      500      {object}  gin.H
// @Router       /api/workout-logs [post]
func (h *Handler) CreateLog(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.service.RequestWorkoutLog(c.Request.Context(), userID, req.WorkoutID, time.Now().UTC())
	if err != nil {
		var cooldownErr *CooldownActiveError
		switch {
		case errors.As(err, &cooldownErr):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":           "cooldown active",
				"hours_remaining": cooldownErr.HoursRemaining,
				"unlocks_at":      cooldownErr.UnlocksAt.UTC().Format(time.RFC3339),
			})
		case errors.Is(err, ErrNotSubscribed):
			c.JSON(http.StatusForbidden, gin.H{"error": "no active subscription"})
		case errors.Is(err, ErrUnknownWorkout):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown workout"})
		default:
			logger.Errorf("Failed to create workout log for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log workout"})
		}
		return
	}

	c.JSON(http.StatusCreated, log)
}

// CooldownStatus godoc
// @Summary      Cooldown status
// @Description  Returns whether a new log is currently blocked and the
// @Description  unlock anchor the client counts down against locally.
// @Tags         workout-logs
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  adherence.Window
// @Failure      500  {object}  gin.H
// @Router       /api/workout-logs/cooldown-status [get]
func (h *Handler) CooldownStatus(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	window, err := h.service.GetCooldownStatus(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cooldown status"})
		return
	}

	c.JSON(http.StatusOK, window)
}

// CurrentWeek godoc
// @Summary      Current program week
// @Description  Composes the week position, cooldown state and per-workout
// @Description  statuses for the caller's active program.
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  WeekStatus
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /api/workouts/current-week [get]
func (h *Handler) CurrentWeek(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	status, err := h.service.GetCurrentWeekStatus(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotSubscribed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
			return
		}
		logger.Errorf("Failed to load current week for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load current week"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Eligibility godoc
// @Summary      Refund eligibility
// @Description  Recomputes the refund state from the full week history.
// @Tags         eligibility
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  adherence.Eligibility
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /api/eligibility [get]
func (h *Handler) Eligibility(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	state, err := h.service.GetEligibility(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotSubscribed) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
			return
		}
		logger.Errorf("Failed to compute eligibility for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute eligibility"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// Settle godoc
// @Summary      Settle a finished program
// @Description  Refunds or forfeits the pledge once all program weeks have
// @Description  elapsed. Idempotent per subscription: retries fail cleanly.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        subscriptionID  path      int  true  "Subscription ID"
// @Success      200             {object}  SettlementResult
// @Failure      400             {object}  gin.H
// @Failure      409             {object}  gin.H
// @Failure      500             {object}  gin.H
// @Router       /admin/subscriptions/{subscriptionID}/settle [post]
func (h *Handler) Settle(c *gin.Context) {
	subID, err := strconv.Atoi(c.Param("subscriptionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	result, err := h.service.Settle(c.Request.Context(), subID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, ErrProgramNotComplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "program has not finished yet"})
		case errors.Is(err, ErrAlreadySettled):
			c.JSON(http.StatusConflict, gin.H{"error": "subscription already settled"})
		default:
			logger.Errorf("Failed to settle subscription %d: %v", subID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to settle subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListUserLogs godoc
// @Summary      Workout log audit trail
// @Description  Full append-only log history for a user, newest first.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   WorkoutLog
// @Failure      400     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /admin/users/{userID}/workout-logs [get]
func (h *Handler) ListUserLogs(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.repo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workout logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
