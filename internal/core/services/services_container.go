package services

import (
	portsrepo "github.com/gapy-app/gapy_backend/internal/core/ports/repositories"
	portssvc "github.com/gapy-app/gapy_backend/internal/core/ports/services"
	"github.com/gapy-app/gapy_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.AccountRepo, repos.TransactionRepo)
	container.Payee = NewPayeeService(repos.PayeeRepo, repos.AccountRepo)

	// Recharge and bill payments debit through the ledger service so every
	// order settles against a recorded ledger entry.
	container.Recharge = NewRechargeService(repos.CatalogRepo, repos.RechargeRepo, container.Ledger)
	container.Bill = NewBillService(repos.CatalogRepo, repos.BillRepo, container.Ledger)

	container.QR = NewQRService(repos.AccountRepo)

	return container
}
