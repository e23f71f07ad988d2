package services

import (
	"time"

	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/platform/config"
)

// ContainerOption adjusts how the service container wires its services.
type ContainerOption func(*containerSettings)

type containerSettings struct {
	now func() time.Time
}

// WithClock makes every service read time from now.
func WithClock(now func() time.Time) ContainerOption {
	return func(s *containerSettings) {
		s.now = now
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ContainerOption) *portssvc.ServiceContainer {
	settings := &containerSettings{now: time.Now}
	for _, option := range options {
		option(settings)
	}

	workers := defaultLedgerWorkers
	if cfg != nil && cfg.LedgerWorkers > 0 {
		workers = cfg.LedgerWorkers
	}

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.TxManager, WithAccountClock(settings.now)),
		Journal:   NewJournalService(repos.JournalRepo, repos.TxManager, WithJournalClock(settings.now)),
		Reporting: NewReportingService(repos.AccountRepo, repos.JournalRepo, WithLedgerWorkers(workers)),
	}
}
