package dto

// YearlySummaryParams defines query parameters for the yearly summary.
type YearlySummaryParams struct {
	Year     int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Currency string `form:"currency"`
}

// MonthlySummaryParams defines query parameters for the monthly summary.
type MonthlySummaryParams struct {
	Year  int `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// DistributionParams defines query parameters for the current month distribution.
// Unrecognized values mean no filter.
type DistributionParams struct {
	Type     string `form:"type"`
	Currency string `form:"currency"`
}
