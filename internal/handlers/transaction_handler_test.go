package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

type mockTransactionService struct {
	addTransactionFn      func(input services.NewTransaction) (*models.Transaction, error)
	getUserTransactionsFn func(userID string) ([]models.Transaction, error)
}

func (m *mockTransactionService) AddTransaction(input services.NewTransaction) (*models.Transaction, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string) ([]models.Transaction, error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID)
	}
	return nil, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions/add-income", handler.AddIncome)
	r.POST("/transactions/add-expense", handler.AddExpense)
	r.GET("/transactions/:userId", handler.GetTransactions)
	return r
}

func addTransactionBody(txType string) string {
	return fmt.Sprintf(`{
		"amount": 49.99,
		"category": "Food",
		"paymentMode": "upi",
		"date": "2026-01-05T10:00:00Z",
		"type": %q,
		"userId": %q
	}`, txType, testUserID)
}

func TestAddIncomeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var captured services.NewTransaction
		handler := NewTransactionHandler(&mockTransactionService{
			addTransactionFn: func(input services.NewTransaction) (*models.Transaction, error) {
				captured = input
				return &models.Transaction{}, nil
			},
		})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodPost, "/transactions/add-income", addTransactionBody("income"))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["message"] != "Income Added Successfully" {
			t.Errorf("unexpected message: %v", body["message"])
		}
		if captured.Type != models.TransactionTypeIncome {
			t.Errorf("expected income type, got %q", captured.Type)
		}
		if !captured.Amount.Equal(decimal.RequireFromString("49.99")) {
			t.Errorf("expected amount 49.99, got %s", captured.Amount)
		}
	})

	t.Run("invalid_payment_mode", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		body := fmt.Sprintf(`{
			"amount": 10,
			"category": "Food",
			"paymentMode": "cheque",
			"date": "2026-01-05T10:00:00Z",
			"type": "income",
			"userId": %q
		}`, testUserID)
		rec := doRequest(r, http.MethodPost, "/transactions/add-income", body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid_type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodPost, "/transactions/add-income", addTransactionBody("transfer"))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodPost, "/transactions/add-income", `{"amount": 10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		if body["success"] != false {
			t.Errorf("expected success false, got %v", body["success"])
		}
	})

	t.Run("service_rejects_amount", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{
			addTransactionFn: func(input services.NewTransaction) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidInput
			},
		})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodPost, "/transactions/add-income", addTransactionBody("income"))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAddExpenseHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodPost, "/transactions/add-expense", addTransactionBody("expense"))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["message"] != "Expense Added Successfully" {
			t.Errorf("unexpected message: %v", body["message"])
		}
	})
}

func TestGetTransactionsHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{
			getUserTransactionsFn: func(userID string) ([]models.Transaction, error) {
				return []models.Transaction{
					{
						UserID:      userID,
						Amount:      decimal.RequireFromString("20"),
						Category:    "Food",
						PaymentMode: models.PaymentModeCash,
						Date:        time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC),
						Type:        models.TransactionTypeExpense,
					},
				}, nil
			},
		})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodGet, "/transactions/"+testUserID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["message"] != "Transactions Found Successfully" {
			t.Errorf("unexpected message: %v", body["message"])
		}
		txns, ok := body["transactions"].([]interface{})
		if !ok || len(txns) != 1 {
			t.Fatalf("expected 1 transaction, got %v", body["transactions"])
		}
	})

	t.Run("empty_list", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodGet, "/transactions/"+testUserID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		if body["message"] != "No Transactions Found For This User" {
			t.Errorf("unexpected message: %v", body["message"])
		}
		txns, ok := body["transactions"].([]interface{})
		if !ok || len(txns) != 0 {
			t.Errorf("expected an empty transactions array, got %v", body["transactions"])
		}
	})

	t.Run("fetch_failure", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{
			getUserTransactionsFn: func(userID string) ([]models.Transaction, error) {
				return nil, apperrors.ErrInternalServer
			},
		})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, http.MethodGet, "/transactions/"+testUserID, "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
