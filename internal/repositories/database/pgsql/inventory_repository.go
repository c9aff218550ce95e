package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/business_management_app/internal/models"
	"github.com/SscSPs/business_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryReader {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InventoryReader = (*PgxInventoryRepository)(nil)

// ListAreaSummaries counts the items of every area of the user. Areas without
// items are included with a zero count.
func (r *PgxInventoryRepository) ListAreaSummaries(ctx context.Context, userID string) ([]domain.InventoryAreaSummary, error) {
	query := `
		SELECT a.area_id, a.name, a.icon, COUNT(i.item_id)
		FROM inventory_areas a
		LEFT JOIN inventory_items i ON i.area_id = a.area_id
		WHERE a.user_id = $1
		GROUP BY a.area_id, a.name, a.icon, a.created_at
		ORDER BY a.created_at, a.area_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory areas: %w", err)
	}
	defer rows.Close()

	areas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryAreaSummary, error) {
		var m models.InventoryAreaSummary
		if err := row.Scan(&m.AreaID, &m.Name, &m.Icon, &m.ItemsCount); err != nil {
			return domain.InventoryAreaSummary{}, err
		}
		return mapping.ToDomainInventoryAreaSummary(m), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory areas: %w", err)
	}
	return areas, nil
}
