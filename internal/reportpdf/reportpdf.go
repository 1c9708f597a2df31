// Package reportpdf renders a monthly report as a PDF document.
package reportpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"fintrack/internal/report"
)

// Render lays out the monthly report for the given period and returns the
// PDF bytes.
func Render(year int, monthName string, rep *report.Monthly) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fintrack Monthly Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Fintrack Monthly Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", titleCase(monthName), year))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total Income: %s", rep.TotalIncome.StringFixed(2)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Expense: %s", rep.TotalExpense.StringFixed(2)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Total Savings: %s (%d%%)", rep.TotalSavings.StringFixed(2), rep.SavingsPercent))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Transactions this period: %d", rep.TotalTransactions))
	pdf.Ln(7)
	if rep.HighestCategory != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Highest spending category: %s (%s)",
			*rep.HighestCategory, rep.HighestCategoryAmount.StringFixed(2)))
		pdf.Ln(7)
	}
	if rep.MostExpensiveDay != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Most expensive day: %s (%s)",
			*rep.MostExpensiveDay, rep.MostExpensiveDayAmount.StringFixed(2)))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Category Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Cell(30, 7, "%")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, share := range rep.CategoryBreakdown {
		pdf.Cell(70, 7, share.Name)
		pdf.Cell(50, 7, share.Amount.StringFixed(2))
		pdf.Cell(30, 7, fmt.Sprintf("%s%%", share.Percentage.StringFixed(1)))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
