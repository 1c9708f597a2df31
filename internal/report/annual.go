package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// dailyTrendFormat renders dates like "05-jan-2026" once lowercased.
const dailyTrendFormat = "02-Jan-2006"

// MonthBucket is one month's slice of the annual series.
type MonthBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Saving  decimal.Decimal `json:"saving"`
}

// YearSummary aggregates the twelve month buckets.
type YearSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalSaving  decimal.Decimal `json:"totalSaving"`
}

// Annual is the year-to-date analysis: a fixed 12-entry monthly series for
// the reference year, its summary, expense totals per category, and an
// expense trend per day of the reference month.
type Annual struct {
	Result                  []MonthBucket  `json:"result"`
	CurrYearSummary         YearSummary    `json:"currYearSummary"`
	CurrYearCategorySummary *OrderedTotals `json:"currYearCategorySummary"`
	DailyExpensesTrend      *OrderedTotals `json:"dailyExpensesTrend"`
}

// BuildAnnual folds the user's full transaction history into an Annual
// analysis. The reference instant is an explicit parameter so the reference
// year and month are testable; production callers pass time.Now(). All date
// comparisons use UTC.
func BuildAnnual(txns []models.Transaction, now time.Time) *Annual {
	now = now.UTC()
	currYear := now.Year()
	currMonth := now.Month()

	result := make([]MonthBucket, 12)
	for i := range result {
		result[i] = MonthBucket{
			Month:   monthAbbrevs[i],
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Saving:  decimal.Zero,
		}
	}

	// Monthly series. Saving is recomputed after every update so it always
	// agrees with the bucket's running income and expense.
	for _, txn := range txns {
		d := txn.Date.UTC()
		if d.Year() != currYear {
			continue
		}
		idx := int(d.Month()) - 1
		switch txn.Type {
		case models.TransactionTypeIncome:
			result[idx].Income = result[idx].Income.Add(txn.Amount)
		case models.TransactionTypeExpense:
			result[idx].Expense = result[idx].Expense.Add(txn.Amount)
		}
		result[idx].Saving = result[idx].Income.Sub(result[idx].Expense)
	}

	// Year summary. TotalSaving is the running difference of the totals,
	// not a sum of per-month savings; subtraction being linear makes the
	// two agree.
	summary := YearSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		TotalSaving:  decimal.Zero,
	}
	for _, bucket := range result {
		summary.TotalIncome = summary.TotalIncome.Add(bucket.Income)
		summary.TotalExpense = summary.TotalExpense.Add(bucket.Expense)
		summary.TotalSaving = summary.TotalIncome.Sub(summary.TotalExpense)
	}

	// Expense totals per category for the reference year.
	categories := NewOrderedTotals()
	for _, txn := range txns {
		d := txn.Date.UTC()
		if d.Year() != currYear || txn.Type != models.TransactionTypeExpense {
			continue
		}
		categories.Add(txn.Category, txn.Amount)
	}

	// Expense totals per day of the reference calendar month.
	daily := NewOrderedTotals()
	for _, txn := range txns {
		d := txn.Date.UTC()
		if txn.Type != models.TransactionTypeExpense {
			continue
		}
		if d.Year() != currYear || d.Month() != currMonth {
			continue
		}
		daily.Add(strings.ToLower(d.Format(dailyTrendFormat)), txn.Amount)
	}

	return &Annual{
		Result:                  result,
		CurrYearSummary:         summary,
		CurrYearCategorySummary: categories,
		DailyExpensesTrend:      daily,
	}
}
