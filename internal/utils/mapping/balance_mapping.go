package mapping

import (
	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/SscSPs/business_management_app/internal/models"
)

// ToModelBalanceConfig converts a domain BalanceConfig to a model BalanceConfig
func ToModelBalanceConfig(d domain.BalanceConfig) models.BalanceConfig {
	return models.BalanceConfig{
		UserID:            d.UserID,
		InitialBalanceUSD: d.InitialBalance.USD.String(),
		InitialBalanceCUP: d.InitialBalance.CUP.String(),
		BalanceTotalUSD:   d.TotalBalance.USD.String(),
		BalanceTotalCUP:   d.TotalBalance.CUP.String(),
		UpdatedAt:         d.UpdatedAt,
	}
}

// ToDomainBalanceConfig converts a model BalanceConfig to a domain BalanceConfig
func ToDomainBalanceConfig(m models.BalanceConfig) (domain.BalanceConfig, error) {
	cfg := domain.BalanceConfig{UserID: m.UserID, UpdatedAt: m.UpdatedAt}
	fields := []struct {
		name  string
		value string
		dst   *domain.CurrencyAmounts
		cur   domain.Currency
	}{
		{"initial_balance_usd", m.InitialBalanceUSD, &cfg.InitialBalance, domain.USD},
		{"initial_balance_cup", m.InitialBalanceCUP, &cfg.InitialBalance, domain.CUP},
		{"balance_total_usd", m.BalanceTotalUSD, &cfg.TotalBalance, domain.USD},
		{"balance_total_cup", m.BalanceTotalCUP, &cfg.TotalBalance, domain.CUP},
	}
	for _, f := range fields {
		d, err := ParseStoredDecimal(f.name, f.value)
		if err != nil {
			return domain.BalanceConfig{}, err
		}
		f.dst.Add(f.cur, d)
	}
	return cfg, nil
}
