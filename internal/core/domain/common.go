package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Page is a one-based page request. A zero Page or PageSize disables paging.
type Page struct {
	Page     int
	PageSize int
}

// Enabled reports whether both page and size are set.
func (p Page) Enabled() bool {
	return p.Page > 0 && p.PageSize > 0
}
