package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/core/services"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/platform/logger"
	"github.com/SscSPs/bizledger/internal/repositories"
	"github.com/SscSPs/bizledger/pkg/database"
	"github.com/spf13/cobra"
)

// ErrBooksUnhealthy is returned by check-books when the integrity report lists a defect.
var ErrBooksUnhealthy = errors.New("books are not healthy")

// Migrator is the subset of database.Migrator the migrate commands use.
type Migrator interface {
	Up() (bool, error)
	Down(steps int) error
	Version() (uint, bool, error)
	Close() error
}

// Deps are the collaborators the commands reach for. Tests swap in memory storage.
type Deps struct {
	LoadConfig   func() (*config.Config, error)
	OpenRepos    func(ctx context.Context, cfg *config.Config, log *slog.Logger) (portsrepo.RepositoryProvider, func(), error)
	OpenMigrator func(cfg *config.Config) (Migrator, error)
	LogOutput    io.Writer
}

// DefaultDeps wires the commands to the configured storage.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.LoadConfig,
		OpenRepos:  repositories.Open,
		OpenMigrator: func(cfg *config.Config) (Migrator, error) {
			return database.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath)
		},
		LogOutput: os.Stderr,
	}
}

// NewRootCommand creates the admin CLI with all subcommands registered.
func NewRootCommand(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bizledger-admin",
		Short: "Administrative tasks for the bizledger books",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCommand(deps))
	rootCmd.AddCommand(newSeedChartCommand(deps))
	rootCmd.AddCommand(newCheckBooksCommand(deps))
	rootCmd.AddCommand(newTrialBalanceCommand(deps))

	return rootCmd
}

func (d Deps) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := d.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	out := d.LogOutput
	if out == nil {
		out = os.Stderr
	}
	return cfg, logger.NewLogger(cfg.LogLevel, out), nil
}

// withServices opens storage, builds the service container and runs fn against it.
func (d Deps) withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, log, err := d.setup()
	if err != nil {
		return err
	}
	repos, closeRepos, err := d.OpenRepos(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer closeRepos()

	return fn(services.NewServiceContainer(cfg, repos))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
