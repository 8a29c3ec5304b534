package subscription

import (
	"database/sql"
	"errors"
	"net/http"

	"pledgefit/internal/auth"
	"pledgefit/internal/logger"
	"pledgefit/internal/metrics"
	"pledgefit/internal/pledge"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo       Repository
	pledgeRepo pledge.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo:       NewRepository(db),
		pledgeRepo: pledge.NewRepository(db),
	}
}

func getPlans() []Plan {
	return []Plan{
		{
			Type:            "kickstart",
			Name:            "Kickstart",
			Description:     "12 weeks, 3 workouts per week, $50 pledge",
			PledgeCents:     5000,
			RequiredPerWeek: 3,
			ProgramWeeks:    12,
			GraceWeeks:      1,
		},
		{
			Type:            "committed",
			Name:            "Committed",
			Description:     "12 weeks, 4 workouts per week, $100 pledge",
			PledgeCents:     10000,
			RequiredPerWeek: 4,
			ProgramWeeks:    12,
			GraceWeeks:      1,
		},
		{
			Type:            "all_in",
			Name:            "All In",
			Description:     "12 weeks, 5 workouts per week, $250 pledge",
			PledgeCents:     25000,
			RequiredPerWeek: 5,
			ProgramWeeks:    12,
			GraceWeeks:      1,
		},
	}
}

func findPlan(planType string) (Plan, error) {
	for _, p := range getPlans() {
		if p.Type == planType {
			return p, nil
		}
	}
	return Plan{}, errors.New("unknown plan type")
}

// ListPlans godoc
// @Summary      List pledge plans
// @Tags         subscriptions
// @Produce      json
// @Success      200  {array}  Plan
// @Router       /api/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, getPlans())
}

// GetMy godoc
// @Summary      Current subscription
// @Description  Returns the caller's active subscription, if any.
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Subscription
// @Failure      404  {object}  gin.H
// @Router       /api/subscription [get]
func (h *Handler) GetMy(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sub, err := h.repo.GetActiveByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Activate godoc
// @Summary      Activate a subscription
// @Description  Called by the payment collaborator once the pledge payment is
// @Description  confirmed. Records the pledge and anchors the program clock.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ActivateRequest  true  "Activation data"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/subscriptions [post]
func (h *Handler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := findPlan(req.PlanType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan type"})
		return
	}

	ctx := c.Request.Context()

	sub, err := h.repo.Activate(ctx, req.UserID, plan)
	if err != nil {
		if errors.Is(err, ErrAlreadyActive) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already has an active subscription"})
			return
		}
		logger.Errorf("Failed to activate subscription for user %d: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to activate subscription"})
		return
	}

	if err := h.pledgeRepo.AddTransaction(ctx, req.UserID, plan.PledgeCents, pledge.TxPledgePayment); err != nil {
		logger.Errorf("Failed to record pledge for user %d: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record pledge"})
		return
	}

	logger.Info("Subscription activated", "user_id", req.UserID, "plan", plan.Type)
	metrics.RecordActivation(plan.Type)

	c.JSON(http.StatusCreated, sub)
}
