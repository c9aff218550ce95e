package mapping

import (
	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/models"
)

// ToModelTransactionDetails converts domain details into the stored jsonb document.
func ToModelTransactionDetails(d domain.TransactionDetails) models.TransactionDetails {
	attachments := d.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return models.TransactionDetails{
		PaymentMethod:   d.PaymentMethod,
		BankAccountID:   d.BankAccountID,
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		Attachments:     attachments,
	}
}

// ToDomainTransactionDetails converts the stored jsonb document into domain details.
func ToDomainTransactionDetails(m models.TransactionDetails) domain.TransactionDetails {
	attachments := m.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	return domain.TransactionDetails{
		PaymentMethod:   m.PaymentMethod,
		BankAccountID:   m.BankAccountID,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		Attachments:     attachments,
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Date:          d.Date,
		Amount:        d.Amount.String(),
		Currency:      string(d.Currency),
		Type:          string(d.Type),
		Category:      d.Category,
		Description:   d.Description,
		Details:       ToModelTransactionDetails(d.Details),
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Rows with an unparsable amount or an unknown currency or type are rejected.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	amount, err := ParseStoredDecimal("amount", m.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}
	currency := domain.Currency(m.Currency)
	if !currency.IsValid() {
		return domain.Transaction{}, apperrors.NewDataIntegrityError("currency", m.Currency, nil)
	}
	txType := domain.TransactionType(m.Type)
	if !txType.IsValid() {
		return domain.Transaction{}, apperrors.NewDataIntegrityError("type", m.Type, nil)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Date:          m.Date,
		Amount:        amount,
		Currency:      currency,
		Type:          txType,
		Category:      m.Category,
		Description:   m.Description,
		Details:       ToDomainTransactionDetails(m.Details),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions, stopping at the first corrupt row.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// ToDomainLedgerTotals folds grouped SUM rows into ledger totals.
func ToDomainLedgerTotals(rows []models.LedgerTotalRow) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	for _, row := range rows {
		sum, err := ParseStoredDecimal("total", row.Total)
		if err != nil {
			return domain.LedgerTotals{}, err
		}
		currency := domain.Currency(row.Currency)
		var ok bool
		switch domain.TransactionType(row.Type) {
		case domain.Income:
			ok = totals.Income.Add(currency, sum)
		case domain.Expense:
			ok = totals.Expense.Add(currency, sum)
		default:
			return domain.LedgerTotals{}, apperrors.NewDataIntegrityError("type", row.Type, nil)
		}
		if !ok {
			return domain.LedgerTotals{}, apperrors.NewDataIntegrityError("currency", row.Currency, nil)
		}
	}
	return totals, nil
}
