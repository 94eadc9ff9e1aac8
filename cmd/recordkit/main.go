package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/cmd/recordkit/commands"
)

var rootCmd = &cobra.Command{
	Use:   "recordkit",
	Short: "recordkit - batch validation for customer record exports",
	Long: `recordkit - batch validation for customer record exports.

recordkit checks every record of a CSV export against a declarative field
schema, splits the batch into valid and invalid records, exports the valid
ones, and writes a plain-text error report for everything that failed.

Available commands:
  validate - Validate a CSV export against the customer schema
  generate - Generate a sample CSV export with seeded defects
  version  - Show version and build information

Examples:
  recordkit generate --rows 500 --seed 42    # Write a sample export
  recordkit validate -i customers.csv        # Validate it
  recordkit validate -i customers.csv --json # Machine-readable progress
  recordkit validate --schema fields.yaml    # Custom field schema`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
