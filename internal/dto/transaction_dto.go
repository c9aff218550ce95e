package dto

import (
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionDetails carries the optional bookkeeping fields of a transaction.
type TransactionDetails struct {
	PaymentMethod   *string  `json:"paymentMethod"`
	BankAccountID   *string  `json:"bankAccountID"`
	ReferenceNumber *string  `json:"referenceNumber"`
	Notes           *string  `json:"notes"`
	Attachments     []string `json:"attachments"`
}

// CreateTransactionRequest defines the data needed to record an income or expense.
type CreateTransactionRequest struct {
	Date        time.Time          `json:"date" binding:"required"`
	Amount      *decimal.Decimal   `json:"amount" binding:"required"`
	Currency    string             `json:"currency" binding:"required,currency"`
	Type        string             `json:"type" binding:"required,txtype"`
	Category    string             `json:"category" binding:"required"`
	Description string             `json:"description"`
	Details     TransactionDetails `json:"details"`
}

// UpdateTransactionRequest replaces every editable field of a transaction.
type UpdateTransactionRequest CreateTransactionRequest

// ToDomainDetails converts the request details into the domain sub-record.
func (d TransactionDetails) ToDomainDetails() domain.TransactionDetails {
	attachments := d.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return domain.TransactionDetails{
		PaymentMethod:   d.PaymentMethod,
		BankAccountID:   d.BankAccountID,
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		Attachments:     attachments,
	}
}

// ListTransactionsParams defines query parameters for listing transactions.
// from is inclusive, to is exclusive. Either limit or page/pageSize may be used.
type ListTransactionsParams struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Currency string `form:"currency"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                    `json:"transactionID"`
	Date          time.Time                 `json:"date"`
	Amount        decimal.Decimal           `json:"amount"`
	Currency      domain.Currency           `json:"currency"`
	Type          domain.TransactionType    `json:"type"`
	Category      string                    `json:"category"`
	Description   string                    `json:"description"`
	Details       domain.TransactionDetails `json:"details"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page,omitempty"`
	PageSize     int                   `json:"pageSize,omitempty"`
	TotalPages   int                   `json:"totalPages,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Type:          t.Type,
		Category:      t.Category,
		Description:   t.Description,
		Details:       t.Details,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs
func ToTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i := range txs {
		res[i] = ToTransactionResponse(&txs[i])
	}
	return res
}
