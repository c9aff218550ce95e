package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/business_management_app/internal/apperrors"
	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_management_app/internal/models"
	"github.com/SscSPs/business_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const balanceColumns = `user_id, initial_balance_usd::text, initial_balance_cup::text, balance_total_usd::text, balance_total_cup::text, updated_at`

type PgxBalanceConfigRepository struct {
	BaseRepository
}

// newPgxBalanceConfigRepository creates a new repository for per-user balance rows.
func newPgxBalanceConfigRepository(pool *pgxpool.Pool) portsrepo.BalanceConfigRepositoryFacade {
	return &PgxBalanceConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BalanceConfigRepositoryFacade = (*PgxBalanceConfigRepository)(nil)

func scanBalanceConfig(row pgx.Row) (models.BalanceConfig, error) {
	var m models.BalanceConfig
	err := row.Scan(
		&m.UserID,
		&m.InitialBalanceUSD,
		&m.InitialBalanceCUP,
		&m.BalanceTotalUSD,
		&m.BalanceTotalCUP,
		&m.UpdatedAt,
	)
	return m, err
}

// FindBalanceConfig retrieves the balance row of a user.
func (r *PgxBalanceConfigRepository) FindBalanceConfig(ctx context.Context, userID string) (*domain.BalanceConfig, error) {
	query := `SELECT ` + balanceColumns + ` FROM balance_config WHERE user_id = $1;`
	m, err := scanBalanceConfig(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance config for user %s: %w", userID, err)
	}

	cfg, err := mapping.ToDomainBalanceConfig(m)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertBalanceConfig inserts or replaces the balance row of cfg.UserID.
// Concurrent writers are not serialized; the last write wins.
func (r *PgxBalanceConfigRepository) UpsertBalanceConfig(ctx context.Context, cfg domain.BalanceConfig) (*domain.BalanceConfig, error) {
	query := `
		INSERT INTO balance_config (user_id, initial_balance_usd, initial_balance_cup, balance_total_usd, balance_total_cup, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			initial_balance_usd = EXCLUDED.initial_balance_usd,
			initial_balance_cup = EXCLUDED.initial_balance_cup,
			balance_total_usd = EXCLUDED.balance_total_usd,
			balance_total_cup = EXCLUDED.balance_total_cup,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + balanceColumns + `;`

	m, err := scanBalanceConfig(r.Pool.QueryRow(ctx, query,
		cfg.UserID,
		cfg.InitialBalance.USD,
		cfg.InitialBalance.CUP,
		cfg.TotalBalance.USD,
		cfg.TotalBalance.CUP,
		cfg.UpdatedAt,
	))
	if err != nil {
		return nil, mapPgError(err, "failed to upsert balance config for user "+cfg.UserID)
	}

	saved, err := mapping.ToDomainBalanceConfig(m)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
