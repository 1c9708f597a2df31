package report

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CategoryShare is one category's slice of a period's total expense.
type CategoryShare struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Monthly is the derived report for a single (year, month) period.
// HighestCategory and MostExpensiveDay are nil when the period has no
// expenses.
type Monthly struct {
	TotalIncome            decimal.Decimal      `json:"totalIncome"`
	TotalExpense           decimal.Decimal      `json:"totalExpense"`
	TotalSavings           decimal.Decimal      `json:"totalSavings"`
	SavingsPercent         int                  `json:"savingsPercent"`
	TotalTransactions      int                  `json:"totalTransactions"`
	HighestCategory        *string              `json:"highestCategory"`
	HighestCategoryAmount  decimal.Decimal      `json:"highestCategoryAmount"`
	MostExpensiveDay       *string              `json:"mostExpensiveDay"`
	MostExpensiveDayAmount decimal.Decimal      `json:"mostExpensiveDayAmount"`
	CategoryBreakdown      []CategoryShare      `json:"categoryBreakdown"`
	Transactions           []models.Transaction `json:"transactions"`
}

// BuildMonthly folds a period's transactions into a Monthly report in a
// single pass. Income adds to totalIncome; expense adds to totalExpense and
// to the per-category and per-calendar-day accumulators. The day key is the
// transaction's own date as a UTC ISO day string, not a local-time
// adjustment of it.
func BuildMonthly(txns []models.Transaction) *Monthly {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	categories := NewOrderedTotals()
	days := NewOrderedTotals()

	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case models.TransactionTypeExpense:
			totalExpense = totalExpense.Add(txn.Amount)
			categories.Add(txn.Category, txn.Amount)
			days.Add(txn.Date.UTC().Format("2006-01-02"), txn.Amount)
		}
	}

	totalSavings := totalIncome.Sub(totalExpense)

	// Defined as 0 when there is no income, not a division error.
	savingsPercent := 0
	if totalIncome.IsPositive() {
		savingsPercent = int(totalSavings.Div(totalIncome).Mul(hundred).Round(0).IntPart())
	}

	breakdown := make([]CategoryShare, 0, categories.Len())
	for _, name := range categories.Keys() {
		amount := categories.Get(name)
		percentage := decimal.Zero
		if totalExpense.IsPositive() {
			percentage = amount.Div(totalExpense).Mul(hundred)
		}
		breakdown = append(breakdown, CategoryShare{
			Name:       name,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	m := &Monthly{
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		TotalSavings:      totalSavings,
		SavingsPercent:    savingsPercent,
		TotalTransactions: len(txns),
		CategoryBreakdown: breakdown,
		Transactions:      txns,
	}

	if name, amount := categories.Max(); name != "" {
		m.HighestCategory = &name
		m.HighestCategoryAmount = amount
	}
	if day, amount := days.Max(); day != "" {
		m.MostExpensiveDay = &day
		m.MostExpensiveDayAmount = amount
	}

	return m
}
