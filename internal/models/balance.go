package models

import "time"

// BalanceConfig is a row of the balance_config table.
type BalanceConfig struct {
	UserID            string    `db:"user_id"`
	InitialBalanceUSD string    `db:"initial_balance_usd"`
	InitialBalanceCUP string    `db:"initial_balance_cup"`
	BalanceTotalUSD   string    `db:"balance_total_usd"`
	BalanceTotalCUP   string    `db:"balance_total_cup"`
	UpdatedAt         time.Time `db:"updated_at"`
}
