package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/core/narrative"
	portssvc "github.com/SscSPs/business_management_app/internal/core/ports/services"
	"github.com/SscSPs/business_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportFunc func(ctx context.Context, userID string, period domain.ReportPeriod) (*domain.Report, error)

// reportHandler serves the narrative reports.
type reportHandler struct {
	reportService portssvc.ReportService
	location      *time.Location
}

// RegisterReportRoutes registers the report routes. Plain dates are read in loc.
func RegisterReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService, loc *time.Location) {
	h := &reportHandler{reportService: reportService, location: loc}

	reports := rg.Group("/reports")
	{
		reports.GET("/finance", h.serve(reportService.FinanceReport, "Failed to generate finance report"))
		reports.GET("/warehouse", h.serve(reportService.WarehouseReport, "Failed to generate warehouse report"))
		reports.GET("/inventory", h.serve(reportService.InventoryReport, "Failed to generate inventory report"))
		reports.GET("/global", h.serve(reportService.GlobalReport, "Failed to generate global report"))
	}
}

// serve godoc
// @Summary Generate a narrative report
// @Description Builds the finance, warehouse, inventory or global report for an optional period. format=markdown returns text/markdown.
// @Tags reports
// @Produce json
// @Produce text/markdown
// @Param kind path string true "finance, warehouse, inventory or global"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Exclusive end date (YYYY-MM-DD)"
// @Param label query string false "Period label printed in the report"
// @Param format query string false "json (default) or markdown"
// @Success 200 {object} domain.Report
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/{kind} [get]
func (h *reportHandler) serve(generate reportFunc, failure string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var params dto.ReportParams
		if !bindQuery(c, &params) {
			return
		}
		from, until, err := parseRange(params.From, params.To, h.location)
		if err != nil {
			handleServiceError(c, err, "Invalid date range")
			return
		}

		report, err := generate(c.Request.Context(), userID, domain.ReportPeriod{Label: params.Label, From: from, Until: until})
		if err != nil {
			handleServiceError(c, err, failure)
			return
		}

		if params.Format == dto.ReportFormatMarkdown {
			c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(narrative.RenderMarkdown(*report)))
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
