package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/loyalty-lab/internal/config"
	"github.com/JaimeStill/loyalty-lab/migrations"
	"github.com/JaimeStill/loyalty-lab/pkg/database"
	"github.com/JaimeStill/loyalty-lab/pkg/logging"
	"github.com/JaimeStill/loyalty-lab/pkg/web"
	"github.com/JaimeStill/loyalty-lab/web/app"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// Execute builds the command tree and runs it.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Loyalty program registration service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			cfg = loaded
			return nil
		},
	}

	root.AddCommand(serveCmd(), migrateCmd(), routesCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := NewServer(cfg)
			if err != nil {
				return fmt.Errorf("server init failed: %w", err)
			}

			if err := srv.Start(); err != nil {
				return fmt.Errorf("server start failed: %w", err)
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			log.Println("server stopped gracefully")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(&cfg.Logging)
			if down {
				return database.Rollback(&cfg.Database, migrations.FS, logger)
			}
			return database.Migrate(&cfg.Database, migrations.FS, logger)
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Routes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range table.Routes() {
				fmt.Fprintf(out, "%-20s %-16s %s\n", web.JoinPath(cfg.App.BasePath, r.Path), r.Name, r.View.Template)
			}
			return nil
		},
	}
}
