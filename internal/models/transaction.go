package models

import "time"

// TransactionDetails is the jsonb document stored in transactions.details.
type TransactionDetails struct {
	PaymentMethod   *string  `json:"payment_method,omitempty"`
	BankAccountID   *string  `json:"bank_account_id,omitempty"`
	ReferenceNumber *string  `json:"reference_number,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Attachments     []string `json:"attachments"`
}

// Transaction is a row of the transactions table.
// Amount, currency and type are kept as read so that corrupt rows can be
// reported instead of silently coerced.
type Transaction struct {
	TransactionID string             `db:"transaction_id"`
	UserID        string             `db:"user_id"`
	Date          time.Time          `db:"date"`
	Amount        string             `db:"amount"` // selected as amount::text
	Currency      string             `db:"currency"`
	Type          string             `db:"type"`
	Category      string             `db:"category"`
	Description   string             `db:"description"`
	Details       TransactionDetails `db:"details"`
	AuditFields
}

// LedgerTotalRow is one (type, currency) group of a SUM query.
type LedgerTotalRow struct {
	Type     string `db:"type"`
	Currency string `db:"currency"`
	Total    string `db:"total"` // selected as SUM(amount)::text
}
