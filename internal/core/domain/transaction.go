package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// TransactionTypeFilter turns a query value into an optional filter.
// "all", empty and unrecognized values mean no filter.
func TransactionTypeFilter(s string) *TransactionType {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return nil
	}
	return &t
}

// TransactionDetails holds the optional bookkeeping data attached to a transaction.
type TransactionDetails struct {
	PaymentMethod   *string  `json:"paymentMethod,omitempty"`
	BankAccountID   *string  `json:"bankAccountID,omitempty"`
	ReferenceNumber *string  `json:"referenceNumber,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Attachments     []string `json:"attachments"`
}

// PaymentMethodOr returns the payment method, or fallback when none was recorded.
func (d TransactionDetails) PaymentMethodOr(fallback string) string {
	if d.PaymentMethod == nil || strings.TrimSpace(*d.PaymentMethod) == "" {
		return fallback
	}
	return *d.PaymentMethod
}

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	TransactionID string             `json:"transactionID"`
	UserID        string             `json:"userID"`
	Date          time.Time          `json:"date"`
	Amount        decimal.Decimal    `json:"amount"`
	Currency      Currency           `json:"currency"`
	Type          TransactionType    `json:"type"`
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	Details       TransactionDetails `json:"details"`
	AuditFields
}

// Validate checks the fields a transaction must carry before it is stored.
func (t Transaction) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := ValidateAmount("amount", t.Amount); err != nil {
		return err
	}
	if !t.Currency.IsValid() {
		return fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, t.Currency)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unsupported transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

// TransactionFilter narrows a transaction query. Nil and zero fields are not applied.
type TransactionFilter struct {
	From     *time.Time // inclusive
	Until    *time.Time // exclusive
	Category string
	Type     *TransactionType
	Currency *Currency
	Limit    int
	Page
}

// TransactionPage is one page of transactions plus the exact total of matching rows.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}
