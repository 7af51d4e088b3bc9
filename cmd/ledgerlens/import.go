package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/cli"
	"github.com/ledgerlens/ledgerlens/internal/common"
	"github.com/ledgerlens/ledgerlens/internal/csvfile"
	"github.com/ledgerlens/ledgerlens/internal/ingest"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement export",
		Long: `Import reads an OFX/QFX or CSV statement export, categorizes every
transaction, and stores them with a running balance. Batches must be
newer than everything already imported.

Examples:
  ledgerlens import ~/Downloads/statement_march.qfx
  ledgerlens import ~/Downloads/transactions.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var txns []model.Transaction
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ofx", ".qfx":
		txns, err = ofx.NewParser().ParseFile(ctx, f)
	case ".csv":
		txns, err = csvfile.NewParser().ParseFile(ctx, f)
	default:
		return common.NewUserError(
			fmt.Sprintf("cannot import %s files", ext),
			common.ErrUnsupportedFormat)
	}
	if err != nil {
		return err
	}

	store, err := initStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	categorizer, err := initCategorizer()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(txns),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Categorizing transactions..."),
	)

	result, err := ingest.NewImporter(store, categorizer).Import(ctx, txns, func(done, total int) {
		_ = bar.Set(done)
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.TitleStyle.Render("Import complete"))
	fmt.Fprintf(out, "  imported:        %d\n", result.Imported)
	fmt.Fprintf(out, "  duplicates:      %d\n", result.Duplicates)
	fmt.Fprintf(out, "  closing balance: %.2f\n", result.ClosingBalance)
	return nil
}
