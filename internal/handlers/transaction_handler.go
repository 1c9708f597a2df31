package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction recording and listing
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// AddTransactionRequest represents the add-income / add-expense payload.
// Field names are the persisted wire contract.
type AddTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	PaymentMode string          `json:"paymentMode" binding:"required,payment_mode"`
	Date        time.Time       `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required,transaction_type"`
	Note        string          `json:"note"`
	UserID      string          `json:"userId" binding:"required,uuid"`
}

func (h *TransactionHandler) add(c *gin.Context, successMessage string) {
	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	_, err := h.transactionService.AddTransaction(services.NewTransaction{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Category:    req.Category,
		PaymentMode: models.PaymentMode(req.PaymentMode),
		Date:        req.Date,
		Type:        models.TransactionType(req.Type),
		Note:        req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": successMessage})
}

// AddIncome records an income transaction
// @Summary     Add income
// @Description Record a new income transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddTransactionRequest true "Transaction data"
// @Success     201 {object} MessageResponse "Income added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/add-income [post]
func (h *TransactionHandler) AddIncome(c *gin.Context) {
	h.add(c, "Income Added Successfully")
}

// AddExpense records an expense transaction
// @Summary     Add expense
// @Description Record a new expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddTransactionRequest true "Transaction data"
// @Success     201 {object} MessageResponse "Expense added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/add-expense [post]
func (h *TransactionHandler) AddExpense(c *gin.Context) {
	h.add(c, "Expense Added Successfully")
}

// GetTransactions lists a user's transactions, newest first
// @Summary     List transactions
// @Description List all of a user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       userId path string true "User ID"
// @Success     200 {object} MessageResponse "Transaction list (empty list when none)"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{userId} [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID := c.Param("userId")

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if len(transactions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "No Transactions Found For This User",
			"transactions": []models.Transaction{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Transactions Found Successfully",
		"transactions": transactions,
	})
}
