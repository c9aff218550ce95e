package pgsql

import (
	portsrepo "github.com/SscSPs/business_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BalanceRepo:     newPgxBalanceConfigRepository(dbPool),
		WarehouseRepo:   newPgxWarehouseRepository(dbPool),
		InventoryRepo:   newPgxInventoryRepository(dbPool),
	}
}
