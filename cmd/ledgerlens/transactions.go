package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/cli"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Show stored transactions and spending summary",
		RunE:  runTransactions,
	}
	cmd.Flags().Int("limit", 10, "recent transactions to show")
	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := initStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	summary, err := store.Summarize(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.TitleStyle.Render("Summary"))
	fmt.Fprintf(out, "  income:   %s\n", cli.SuccessStyle.Render(fmt.Sprintf("%.2f", summary.TotalIncome)))
	fmt.Fprintf(out, "  expenses: %s\n", cli.WarningStyle.Render(fmt.Sprintf("%.2f", summary.TotalExpenses)))
	fmt.Fprintf(out, "  balance:  %.2f across %d transactions\n", summary.CurrentBalance, summary.Count)

	totals, err := store.CategoryTotals(ctx)
	if err != nil {
		return err
	}
	if len(totals) > 0 {
		fmt.Fprintln(out, cli.TitleStyle.Render("Spending by category"))

		type entry struct {
			category string
			total    float64
		}
		entries := make([]entry, 0, len(totals))
		for c, v := range totals {
			entries = append(entries, entry{c.String(), v})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].total > entries[j].total })

		for _, e := range entries {
			fmt.Fprintf(out, "  %-14s %s\n", e.category, cli.AmountStyle.Render(fmt.Sprintf("%.2f", e.total)))
		}
	}

	recent, err := store.RecentTransactions(ctx, limit)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Fprintln(out, cli.TitleStyle.Render("Recent"))
		for _, tx := range recent {
			fmt.Fprintf(out, "  %s  %-28s %-14s %s\n",
				tx.Date.Format("2006-01-02"),
				tx.Description,
				cli.SubtleStyle.Render(tx.Category.String()),
				cli.AmountStyle.Render(fmt.Sprintf("%.2f", tx.Amount)))
		}
	}
	return nil
}
