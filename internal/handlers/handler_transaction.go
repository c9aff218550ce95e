package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/SscSPs/business_management_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to income and expenses.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	location           *time.Location
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, loc *time.Location) *transactionHandler {
	return &transactionHandler{transactionService: ts, location: loc}
}

// RegisterTransactionRoutes registers routes related to transactions. Plain
// dates in query parameters are read in loc.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, loc *time.Location) {
	h := newTransactionHandler(transactionService, loc)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/recent", h.getRecentActivity)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record an income or expense
// @Description Stores the transaction and reconciles the balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first. Filters are optional; "all" or unknown type/currency values are ignored.
// @Tags transactions
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Exclusive end date (YYYY-MM-DD)"
// @Param category query string false "Category"
// @Param type query string false "income, expense or all"
// @Param currency query string false "USD, CUP or all"
// @Param limit query int false "Maximum number of rows"
// @Param page query int false "Page number, 1-based"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}
	from, until, err := parseRange(params.From, params.To, h.location)
	if err != nil {
		handleServiceError(c, err, "Invalid date range")
		return
	}

	filter := domain.TransactionFilter{
		From:     from,
		Until:    until,
		Category: params.Category,
		Type:     domain.TransactionTypeFilter(params.Type),
		Currency: domain.CurrencyFilter(params.Currency),
		Limit:    params.Limit,
		Page:     pageOf(params.Page, params.PageSize),
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		handleServiceError(c, err, "Failed to list transactions")
		return
	}

	res := dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page.Transactions),
		Total:        page.Total,
	}
	if filter.Page.Enabled() {
		res.Page = filter.Page.Page
		res.PageSize = filter.Page.PageSize
		res.TotalPages = pagination.TotalPages(page.Total, filter.Page.PageSize)
	}
	c.JSON(http.StatusOK, res)
}

// getRecentActivity godoc
// @Summary Recent activity
// @Description Transactions of the last 30 days, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load recent activity"
// @Security BearerAuth
// @Router /transactions/recent [get]
func (h *transactionHandler) getRecentActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.GetRecentActivity(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to load recent activity")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, c.Param("transactionID"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the editable fields of a transaction and reconciles the balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	transactionID := c.Param("transactionID")
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction and reconciles the balance.
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("transactionID")); err != nil {
		handleServiceError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
