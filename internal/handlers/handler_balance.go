package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/SscSPs/business_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests for the balance config and dashboard.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// RegisterBalanceRoutes registers the balance and dashboard routes.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balance := rg.Group("/balance")
	{
		balance.GET("", h.getBalanceConfig)
		balance.PUT("", h.updateBalanceConfig)
	}
	rg.GET("/dashboard/stats", h.getDashboardStats)
}

// getBalanceConfig godoc
// @Summary Get the balance config
// @Description Returns the initial and reconciled total balance per currency. Users that never saved a config get zeros.
// @Tags balance
// @Produce json
// @Success 200 {object} dto.BalanceConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Security BearerAuth
// @Router /balance [get]
func (h *balanceHandler) getBalanceConfig(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cfg, err := h.balanceService.GetBalanceConfig(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceConfigResponse(cfg))
}

// updateBalanceConfig godoc
// @Summary Set the initial balance
// @Description Stores a new initial balance and recomputes the total from the full transaction history.
// @Tags balance
// @Accept json
// @Produce json
// @Param balance body dto.UpdateBalanceConfigRequest true "Initial balance per currency"
// @Success 200 {object} dto.BalanceConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update balance"
// @Security BearerAuth
// @Router /balance [put]
func (h *balanceHandler) updateBalanceConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBalanceConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.balanceService.UpdateBalanceConfig(c.Request.Context(), userID, *req.InitialBalanceUSD, *req.InitialBalanceCUP)
	if err != nil {
		handleServiceError(c, err, "Failed to update balance")
		return
	}

	logger.Info("Balance config updated",
		slog.String("balance_total_usd", cfg.TotalBalance.USD.String()),
		slog.String("balance_total_cup", cfg.TotalBalance.CUP.String()))
	c.JSON(http.StatusOK, dto.ToBalanceConfigResponse(cfg))
}

// getDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Balance per currency plus income and expense of this calendar month compared with the previous one. Changes are null when the previous month had no data.
// @Tags balance
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute dashboard statistics"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *balanceHandler) getDashboardStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.balanceService.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to compute dashboard statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
