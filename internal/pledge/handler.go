package pledge

import (
	"net/http"
	"strconv"

	"pledgefit/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

type AccountResponse struct {
	Account      *Account      `json:"account"`
	Transactions []Transaction `json:"transactions"`
}

// GetMy godoc
// @Summary      Pledge account
// @Description  Returns the caller's pledge balance and transaction history.
// @Tags         pledge
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Max transactions"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  AccountResponse
// @Failure      500     {object}  gin.H
// @Router       /api/pledge [get]
func (h *Handler) GetMy(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()

	account, err := h.repo.GetOrCreateAccount(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pledge account"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, err := h.repo.GetTransactions(ctx, userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Account: account, Transactions: txs})
}
