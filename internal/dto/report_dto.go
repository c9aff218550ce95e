package dto

const (
	ReportFormatJSON     = "json"
	ReportFormatMarkdown = "markdown"
)

// ReportParams defines the period and output format of a narrative report.
// from is inclusive and to is exclusive; both are optional.
type ReportParams struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Label  string `form:"label"`
	Format string `form:"format" binding:"omitempty,oneof=json markdown"`
}
