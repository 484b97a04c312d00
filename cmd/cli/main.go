package main

import (
	"fmt"
	"os"

	"github.com/bo-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/bo-tools/sales-atlas/pkg/services/config"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/bo-tools/sales-atlas/pkg/store/mysql"
	"github.com/bo-tools/sales-atlas/pkg/store/mysql/sales"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SALES_ATLAS_CONFIG"))
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

	cli := terminal.NewCLI(terminal.Options{
		Reports: report.NewService(salesStore),
		Output:  os.Stdout,
	})

	return cli.Execute()
}
