package main

import (
	"fmt"
	"net"
	"os"

	"github.com/bo-tools/sales-atlas/pkg/server"
	"github.com/bo-tools/sales-atlas/pkg/services/config"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/bo-tools/sales-atlas/pkg/store/mysql"
	"github.com/bo-tools/sales-atlas/pkg/store/mysql/sales"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Sales Atlas reporting server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (optional, env vars apply on top)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := mysql.NewDB(mysql.Settings{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	salesStore, err := sales.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create sales store: %w", err)
	}
	if err := salesStore.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports: report.NewService(salesStore),
		},
	})

	return api.Start()
}
