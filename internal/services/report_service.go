package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// reportService fetches a user's transactions and delegates the folds to the
// report package. It never partially computes: either the fetch and the fold
// both succeed, or the caller sees the error.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// Monthly builds the report for one (year, month) period. The month name is
// resolved before anything is fetched; an unrecognized name fails with
// INVALID_MONTH. A period with no transactions returns (nil, nil).
func (s *reportService) Monthly(userID string, year int, monthName string) (*report.Monthly, error) {
	if userID == "" || year == 0 || monthName == "" {
		return nil, apperrors.ErrInvalidInput
	}

	month, ok := report.MonthIndex(monthName)
	if !ok {
		return nil, apperrors.ErrInvalidMonth
	}

	start, end := report.MonthRange(year, month)
	transactions, err := getUserTransactionsBetween(s.db, userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	return report.BuildMonthly(transactions), nil
}

// Annual builds the year-to-date analysis over the user's full history. The
// reference instant determines the current year and month; a user with no
// transactions at all returns (nil, nil).
func (s *reportService) Annual(userID string, now time.Time) (*report.Annual, error) {
	if userID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	// Creation order keeps the category and daily accumulators'
	// first-seen tie-breaking deterministic.
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	return report.BuildAnnual(transactions, now), nil
}
