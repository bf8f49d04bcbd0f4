// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the accepted format for date query parameters and fields.
const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		Note:       req.Note,
		Type:       entity.CategoryType(req.Type),
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{UserID: userID}

	if startStr := ctx.Query("start"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
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
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.EndDate = &end
	}
	if categoryStr := ctx.Query("category"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Note:          req.Note,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, nil))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeTransactionTypeMismatch,
		domainerror.ErrCodeNoteTooLong,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
