package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// summaryHandler serves the chart and table aggregations.
type summaryHandler struct {
	summaryService portssvc.SummarySvc
	location       *time.Location
}

// RegisterSummaryRoutes registers the summary routes. Missing year and month
// parameters default to the current date in loc.
func RegisterSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvc, loc *time.Location) {
	h := &summaryHandler{summaryService: summaryService, location: loc}

	summaries := rg.Group("/summaries")
	{
		summaries.GET("/yearly", h.getYearlySummary)
		summaries.GET("/monthly", h.getMonthlySummary)
		summaries.GET("/distribution", h.getDistribution)
	}
}

func (h *summaryHandler) today() time.Time {
	if h.location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(h.location)
}

// getYearlySummary godoc
// @Summary Yearly income and expense per month
// @Description All twelve months are present, zero when empty.
// @Tags summaries
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param currency query string false "USD, CUP or all"
// @Success 200 {object} domain.YearlySummary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build yearly summary"
// @Security BearerAuth
// @Router /summaries/yearly [get]
func (h *summaryHandler) getYearlySummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.YearlySummaryParams
	if !bindQuery(c, &params) {
		return
	}
	if params.Year == 0 {
		params.Year = h.today().Year()
	}

	summary, err := h.summaryService.GetYearlySummary(c.Request.Context(), userID, params.Year, domain.CurrencyFilter(params.Currency))
	if err != nil {
		handleServiceError(c, err, "Failed to build yearly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getMonthlySummary godoc
// @Summary Monthly totals with category breakdown
// @Tags summaries
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} domain.MonthlySummary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build monthly summary"
// @Security BearerAuth
// @Router /summaries/monthly [get]
func (h *summaryHandler) getMonthlySummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.MonthlySummaryParams
	if !bindQuery(c, &params) {
		return
	}
	today := h.today()
	if params.Year == 0 {
		params.Year = today.Year()
	}
	if params.Month == 0 {
		params.Month = int(today.Month())
	}

	summary, err := h.summaryService.GetMonthlySummary(c.Request.Context(), userID, params.Year, time.Month(params.Month))
	if err != nil {
		handleServiceError(c, err, "Failed to build monthly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getDistribution godoc
// @Summary Current month distribution
// @Description Sums of the current calendar month grouped by type, category and currency.
// @Tags summaries
// @Produce json
// @Param type query string false "income, expense or all"
// @Param currency query string false "USD, CUP or all"
// @Success 200 {array} domain.DistributionEntry
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build distribution"
// @Security BearerAuth
// @Router /summaries/distribution [get]
func (h *summaryHandler) getDistribution(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.DistributionParams
	if !bindQuery(c, &params) {
		return
	}

	entries, err := h.summaryService.GetFinancialDistribution(c.Request.Context(), userID,
		domain.TransactionTypeFilter(params.Type), domain.CurrencyFilter(params.Currency))
	if err != nil {
		handleServiceError(c, err, "Failed to build distribution")
		return
	}
	c.JSON(http.StatusOK, entries)
}
