package wallet

import (
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/port/persistence"
)

// UseCase implements the wallet ledger business logic: atomic credit/debit
// of user balances with an immutable transaction log.
type UseCase struct {
	ledgerRepo   persistence.LedgerRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new wallet use case instance
func NewUseCase(
	ledgerRepo persistence.LedgerRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		ledgerRepo:   ledgerRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
