package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/cli"
	"github.com/ledgerlens/ledgerlens/internal/tax"
)

func taxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax <gross-annual>",
		Short: "Estimate UK income tax and National Insurance",
		Long: `Tax applies the flat UK PAYE bands to a gross annual income.

Example:
  ledgerlens tax 60000`,
		Args: cobra.ExactArgs(1),
		RunE: runTax,
	}
}

func runTax(cmd *cobra.Command, args []string) error {
	gross, err := strconv.ParseFloat(args[0], 64)
	if err != nil || gross < 0 {
		return fmt.Errorf("invalid gross annual income %q", args[0])
	}

	est := tax.EstimateUK(gross)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.TitleStyle.Render(fmt.Sprintf("Estimate for %.2f gross", est.GrossAnnual)))
	fmt.Fprintf(out, "  personal allowance:  %.2f\n", est.PersonalAllowance)
	fmt.Fprintf(out, "  taxable income:      %.2f\n", est.TaxableIncome)
	fmt.Fprintf(out, "  income tax:          %.2f\n", est.IncomeTax)
	fmt.Fprintf(out, "  national insurance:  %.2f\n", est.NationalInsurance)
	fmt.Fprintf(out, "  net annual:          %s\n", cli.SuccessStyle.Render(fmt.Sprintf("%.2f", est.NetAnnual)))
	fmt.Fprintf(out, "  net monthly:         %s\n", cli.SuccessStyle.Render(fmt.Sprintf("%.2f", est.NetMonthly)))
	return nil
}
