package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// AddTransaction records a new income or expense for a user. Transactions
// are immutable once created.
func (s *transactionService) AddTransaction(input NewTransaction) (*models.Transaction, error) {
	if input.UserID == "" || input.Category == "" || input.PaymentMode == "" || input.Date.IsZero() {
		return nil, apperrors.ErrInvalidInput
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	transaction := &models.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Category:    input.Category,
		PaymentMode: input.PaymentMode,
		Date:        input.Date,
		Type:        input.Type,
		Note:        input.Note,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves all of a user's transactions, newest first.
// An empty result is valid, not an error.
func (s *transactionService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// getUserTransactionsBetween retrieves a user's transactions inside an
// inclusive date range, newest first.
func getUserTransactionsBetween(db *gorm.DB, userID string, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
