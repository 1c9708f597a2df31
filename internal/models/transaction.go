package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMode represents how a transaction was paid
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
)

// Transaction represents a single income or expense record tied to a user.
// Transactions are immutable once created; there are no update or delete
// operations. The JSON field names (amount, category, paymentMode, date,
// type, note, userId) are part of the wire contract and must round-trip
// unchanged.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"userId"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	PaymentMode PaymentMode     `gorm:"not null" json:"paymentMode"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Note        string          `json:"note,omitempty"`
}
