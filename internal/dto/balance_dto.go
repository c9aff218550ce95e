package dto

import (
	"time"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateBalanceConfigRequest sets a new initial balance per currency.
// Pointers distinguish an explicit zero from a missing field.
type UpdateBalanceConfigRequest struct {
	InitialBalanceUSD *decimal.Decimal `json:"initialBalanceUSD" binding:"required"`
	InitialBalanceCUP *decimal.Decimal `json:"initialBalanceCUP" binding:"required"`
}

// BalanceConfigResponse defines the data returned for a balance config.
type BalanceConfigResponse struct {
	UserID            string          `json:"userID"`
	InitialBalanceUSD decimal.Decimal `json:"initialBalanceUSD"`
	InitialBalanceCUP decimal.Decimal `json:"initialBalanceCUP"`
	BalanceTotalUSD   decimal.Decimal `json:"balanceTotalUSD"`
	BalanceTotalCUP   decimal.Decimal `json:"balanceTotalCUP"`
	UpdatedAt         *time.Time      `json:"updatedAt,omitempty"` // nil until first saved
}

// ToBalanceConfigResponse converts a domain.BalanceConfig to BalanceConfigResponse DTO
func ToBalanceConfigResponse(cfg *domain.BalanceConfig) BalanceConfigResponse {
	res := BalanceConfigResponse{
		UserID:            cfg.UserID,
		InitialBalanceUSD: cfg.InitialBalance.USD,
		InitialBalanceCUP: cfg.InitialBalance.CUP,
		BalanceTotalUSD:   cfg.TotalBalance.USD,
		BalanceTotalCUP:   cfg.TotalBalance.CUP,
	}
	if !cfg.UpdatedAt.IsZero() {
		updatedAt := cfg.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	return res
}
