package pgsql

import (
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	payeeRepo := newPgxPayeeRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	rechargeRepo := newPgxRechargeRepository(dbPool)
	billRepo := newPgxBillRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		PayeeRepo:       payeeRepo,
		CatalogRepo:     catalogRepo,
		RechargeRepo:    rechargeRepo,
		BillRepo:        billRepo,
	}
}
