package terminal

import (
	"io"
	"os"

	"github.com/bo-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/bo-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/bo-tools/sales-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reports  report.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Reports report.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reports:  opts.Reports,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales-atlas",
		Short: "Back-office reporting tool",
	}

	cmd.AddCommand(commands.NewSalesCmd(cli.reports, cli.reporter))
	cmd.AddCommand(commands.NewInventoryCmd(cli.reports, cli.reporter))
	cmd.AddCommand(commands.NewProfitCmd(cli.reports, cli.reporter))

	return cmd
}
