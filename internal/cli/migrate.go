package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"weddingly/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <up|down [N]|version|force <V>>",
	Short: "Run database schema migrations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("migration init failed: %w", err)
		}
		defer m.Close()

		logger := config.NewLogger()

		switch args[0] {
		case "up":
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("up failed: %w", err)
			}
			logger.Info("migrations: up completed")
		case "down":
			steps := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf("down: invalid steps argument %q", args[1])
				}
				steps = n
			}
			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("down failed: %w", err)
			}
			logger.Info("migrations: down completed", "steps", steps)
		case "version":
			v, dirty, err := m.Version()
			if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
				return fmt.Errorf("version failed: %w", err)
			}
			fmt.Printf("version: %d  dirty: %v\n", v, dirty)
		case "force":
			if len(args) < 2 {
				return fmt.Errorf("force: version argument required")
			}
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("force: invalid version %q", args[1])
			}
			if err := m.Force(v); err != nil {
				return fmt.Errorf("force failed: %w", err)
			}
			logger.Info("migrations: forced", "version", v)
		default:
			return fmt.Errorf("unknown migrate command %q", args[0])
		}
		return nil
	},
}
