package commands

import (
	"fmt"

	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newMigrateCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withMigrator(func(m Migrator) error {
				changed, err := m.Up()
				if err != nil {
					return err
				}
				if changed {
					fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "no new migrations")
				}
				return nil
			})
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withMigrator(func(m Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withMigrator(func(m Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func (d Deps) withMigrator(fn func(Migrator) error) error {
	cfg, _, err := d.setup()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StorageDriverPostgres {
		return fmt.Errorf("migrations require STORAGE_DRIVER=%s, got %s", config.StorageDriverPostgres, cfg.StorageDriver)
	}

	m, err := d.OpenMigrator(cfg)
	if err != nil {
		return err
	}
	runErr := fn(m)
	if err := m.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
