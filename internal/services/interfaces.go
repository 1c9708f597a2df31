package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	ClearRefreshTokenHash(tokenHash string) error
}

// NewTransaction holds the fields of a transaction to record.
type NewTransaction struct {
	UserID      string
	Amount      decimal.Decimal
	Category    string
	PaymentMode models.PaymentMode
	Date        time.Time
	Type        models.TransactionType
	Note        string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	AddTransaction(input NewTransaction) (*models.Transaction, error)
	GetUserTransactions(userID string) ([]models.Transaction, error)
}

// ReportServicer defines the contract for the aggregation endpoints.
// Monthly and Annual return (nil, nil) when the user has no transactions for
// the requested scope; the handler turns that into the "no data" response,
// which is distinct from a fetch failure.
type ReportServicer interface {
	Monthly(userID string, year int, monthName string) (*report.Monthly, error)
	Annual(userID string, now time.Time) (*report.Annual, error)
}
