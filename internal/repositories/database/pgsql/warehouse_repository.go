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
	"github.com/SscSPs/business_management_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, user_id, name, category, stock, min_stock, created_at, updated_at`

type PgxWarehouseRepository struct {
	BaseRepository
}

// newPgxWarehouseRepository creates a new repository for products and stock movements.
func newPgxWarehouseRepository(pool *pgxpool.Pool) portsrepo.WarehouseRepositoryWithTx {
	return &PgxWarehouseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WarehouseRepositoryWithTx = (*PgxWarehouseRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.UserID,
		&p.Name,
		&p.Category,
		&p.Stock,
		&p.MinStock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// SaveProduct inserts a new product.
func (r *PgxWarehouseRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.UserID, m.Name, m.Category, m.Stock, m.MinStock, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to save product "+m.ProductID)
	}
	return nil
}

// FindProductByID retrieves a product owned by userID.
func (r *PgxWarehouseRepository) FindProductByID(ctx context.Context, userID, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 AND user_id = $2;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// ListProducts retrieves matching products ordered by name and the exact match count.
func (r *PgxWarehouseRepository) ListProducts(ctx context.Context, userID string, filter domain.ProductFilter) ([]domain.Product, int, error) {
	w := newWhere("user_id", userID)
	if filter.Search != "" {
		w.add("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM products `+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ` + w.String() + ` ORDER BY name, product_id`
	if filter.Page.Enabled() {
		limit, offset := pagination.LimitOffset(filter.Page.Page, filter.Page.PageSize)
		query += ` LIMIT ` + w.bind(limit) + ` OFFSET ` + w.bind(offset)
	}

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan products: %w", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), total, nil
}

// ListMovements retrieves matching movements newest first, joined with their product.
func (r *PgxWarehouseRepository) ListMovements(ctx context.Context, userID string, filter domain.MovementFilter) ([]domain.Movement, int, error) {
	w := newWhere("m.user_id", userID)
	if filter.Type != nil {
		w.add("m.type = ?", string(*filter.Type))
	}
	if filter.ProductID != "" {
		w.add("m.product_id = ?", filter.ProductID)
	}
	if filter.From != nil {
		w.add("m.created_at >= ?", *filter.From)
	}
	if filter.Until != nil {
		w.add("m.created_at < ?", *filter.Until)
	}

	from := ` FROM movements m JOIN products p ON p.product_id = m.product_id `
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+from+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	query := `SELECT m.movement_id, m.user_id, m.product_id, p.name, p.category, m.qty, m.type, m.created_at` +
		from + w.String() + ` ORDER BY m.created_at DESC, m.movement_id`
	if filter.Page.Enabled() {
		limit, offset := pagination.LimitOffset(filter.Page.Page, filter.Page.PageSize)
		query += ` LIMIT ` + w.bind(limit) + ` OFFSET ` + w.bind(offset)
	}

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	modelMovements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Movement, error) {
		var m models.Movement
		err := row.Scan(
			&m.MovementID,
			&m.UserID,
			&m.ProductID,
			&m.ProductName,
			&m.ProductCategory,
			&m.Qty,
			&m.Type,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan movements: %w", err)
	}

	movements, err := mapping.ToDomainMovementSlice(modelMovements)
	if err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// LockProduct reads a product with SELECT ... FOR UPDATE inside tx.
func (r *PgxWarehouseRepository) LockProduct(ctx context.Context, tx pgx.Tx, userID, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1 AND user_id = $2 FOR UPDATE;`
	m, err := scanProduct(tx.QueryRow(ctx, query, productID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(m)
	return &p, nil
}

// SaveMovement inserts a movement inside tx.
func (r *PgxWarehouseRepository) SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)
	query := `
		INSERT INTO movements (movement_id, user_id, product_id, qty, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, query, m.MovementID, m.UserID, m.ProductID, m.Qty, m.Type, m.CreatedAt); err != nil {
		return mapPgError(err, "failed to save movement "+m.MovementID)
	}
	return nil
}

// UpdateProductStock sets a product's stock inside tx.
func (r *PgxWarehouseRepository) UpdateProductStock(ctx context.Context, tx pgx.Tx, userID, productID string, stock int) error {
	tag, err := tx.Exec(ctx,
		`UPDATE products SET stock = $3, updated_at = NOW() WHERE product_id = $1 AND user_id = $2;`,
		productID, userID, stock)
	if err != nil {
		return mapPgError(err, "failed to update stock of product "+productID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
