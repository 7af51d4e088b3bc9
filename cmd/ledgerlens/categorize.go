package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/cli"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <description> <amount>",
		Short: "Categorize a single transaction description",
		Long: `Categorize runs one description through the full pipeline: income
override, keyword rules, then the statistical classifier.

Examples:
  ledgerlens categorize "TESCO STORES 3028" -- -23.50
  ledgerlens categorize "ACME PAYROLL" 2500.00`,
		Args: cobra.ExactArgs(2),
		RunE: runCategorize,
	}
	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	description := args[0]
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	categorizer, err := initCategorizer()
	if err != nil {
		return err
	}

	decision := categorizer.Categorize(description, amount)

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		cli.BoldStyle.Render(decision.Category.String()),
		cli.SubtleStyle.Render(fmt.Sprintf("(%s)", decision.Source)))
	return nil
}
