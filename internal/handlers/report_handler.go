package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/reportpdf"
	"fintrack/internal/services"
)

// ReportHandler serves the monthly report and the year-to-date analysis
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// MonthlyReportRequest represents the monthly-report request payload
type MonthlyReportRequest struct {
	Year   int    `json:"year" binding:"required"`
	Month  string `json:"month" binding:"required"`
	UserID string `json:"userId" binding:"required,uuid"`
}

// MonthlyReport builds the report for one (year, month) period
// @Summary     Monthly report
// @Description Aggregate a user's transactions for one month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MonthlyReportRequest true "Report period"
// @Success     200 {object} MessageResponse "Report payload, or a no-data message"
// @Failure     400 {object} ErrorResponse "Invalid month name or missing fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/monthly-report [post]
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	var req MonthlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reportData, err := h.reportService.Monthly(req.UserID, req.Year, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if reportData == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No Transactions Found For This Period",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Monthly Report Generated",
		"reportData": reportData,
	})
}

// MonthlyReportPDF renders the monthly report as a PDF document
// @Summary     Monthly report PDF
// @Description Render a user's monthly report as a downloadable PDF
// @Tags        reports
// @Accept      json
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       request body MonthlyReportRequest true "Report period"
// @Success     200 {file} binary "PDF document"
// @Failure     400 {object} ErrorResponse "Invalid month name or missing fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/monthly-report/pdf [post]
func (h *ReportHandler) MonthlyReportPDF(c *gin.Context) {
	var req MonthlyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	reportData, err := h.reportService.Monthly(req.UserID, req.Year, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if reportData == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No Transactions Found For This Period",
		})
		return
	}

	pdfBytes, err := reportpdf.Render(req.Year, req.Month, reportData)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("report-%s-%d.pdf", strings.ToLower(req.Month), req.Year)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// Analysis builds the year-to-date analysis for a user
// @Summary     Annual analysis
// @Description Aggregate a user's current-year transactions into monthly, category, and daily series
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       userId path string true "User ID"
// @Success     200 {object} MessageResponse "Analysis payload, or a no-data message"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/analysis/{userId} [get]
func (h *ReportHandler) Analysis(c *gin.Context) {
	userID := c.Param("userId")

	analysis, err := h.reportService.Annual(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if analysis == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No Transactions Found For This User",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"message":                 "Result Analysis Successfully",
		"result":                  analysis.Result,
		"currYearSummary":         analysis.CurrYearSummary,
		"currYearCategorySummary": analysis.CurrYearCategorySummary,
		"dailyExpensesTrend":      analysis.DailyExpensesTrend,
	})
}
