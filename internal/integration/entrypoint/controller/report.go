// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/report"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles aggregate report endpoints.
type ReportController struct {
	summaryUseCase   *report.GetSummaryUseCase
	monthlyUseCase   *report.GetMonthlyStatsUseCase
	breakdownUseCase *report.GetCategoryBreakdownUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	monthlyUseCase *report.GetMonthlyStatsUseCase,
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:   summaryUseCase,
		monthlyUseCase:   monthlyUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Summary handles GET /transactions/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Totals))
}

// MonthlyStats handles GET /transactions/stats/monthly requests. The year
// query parameter defaults to the current year when absent.
func (c *ReportController) MonthlyStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetMonthlyStatsInput{UserID: userID}
	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year parameter",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		input.Year = year
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(output.Stats))
}

// CategoryBreakdown handles GET /transactions/stats/categories requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetCategoryBreakdownInput{UserID: userID}
	if startStr := ctx.Query("start"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return
		}
		input.StartDate = &start
	}
	if endStr := ctx.Query("end"); endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return
		}
		input.EndDate = &end
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Categories))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
