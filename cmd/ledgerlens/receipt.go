package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerlens/ledgerlens/internal/cli"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/ocr"
	"github.com/ledgerlens/ledgerlens/internal/receipt"
)

func receiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Extract and manage receipts",
	}
	cmd.AddCommand(receiptScanCmd())
	cmd.AddCommand(receiptListCmd())
	return cmd
}

func receiptScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Extract structured data from a receipt photo",
		Long: `Scan OCRs a PNG or JPEG receipt photo, extracts the merchant, date,
total, and line items, and cross-checks the total against the item sum.

Examples:
  ledgerlens receipt scan ~/Pictures/tesco.jpg
  ledgerlens receipt scan --save ~/Pictures/tesco.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runReceiptScan,
	}
	cmd.Flags().Bool("save", false, "persist the extracted receipt")
	cmd.Flags().Bool("raw", false, "also print the raw OCR transcript")
	return cmd
}

func runReceiptScan(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	raw, _ := cmd.Flags().GetBool("raw")

	img, err := decodeImage(args[0])
	if err != nil {
		return err
	}

	backend := &ocr.Tesseract{Language: viper.GetString("ocr.language")}
	engine := receipt.NewEngine(ocr.NewAcquirer(backend))

	doc, err := engine.Extract(cmd.Context(), img)
	if err != nil {
		return fmt.Errorf("receipt extraction failed: %w", err)
	}

	renderReceipt(cmd.OutOrStdout(), &doc)
	if raw {
		fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(doc.RawText))
	}

	if save {
		store, err := initStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		id, err := store.SaveReceipt(cmd.Context(), &doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved as receipt %d\n", id)
	}
	return nil
}

func renderReceipt(w io.Writer, doc *model.ReceiptDocument) {
	merchant := doc.Merchant
	if merchant == "" {
		merchant = "(unknown merchant)"
	}
	fmt.Fprintln(w, cli.TitleStyle.Render(merchant))
	if doc.ReceiptDate != "" {
		fmt.Fprintf(w, "  date: %s\n", doc.ReceiptDate)
	}

	for _, item := range doc.Items {
		qty := ""
		if item.UnitPrice != nil {
			qty = fmt.Sprintf(" (%s x %s)", item.Qty, item.UnitPrice)
		}
		fmt.Fprintf(w, "  %s%s  %s\n",
			item.Name, cli.SubtleStyle.Render(qty),
			cli.AmountStyle.Render(item.LineTotal.StringFixed(2)))
	}

	fmt.Fprintf(w, "  items total: %s\n", doc.CalculatedTotal.StringFixed(2))
	if doc.Total != nil {
		fmt.Fprintf(w, "  printed total: %s\n", doc.Total.StringFixed(2))
	}

	switch {
	case doc.Verified == nil:
		fmt.Fprintln(w, cli.SubtleStyle.Render("  no printed total to verify against"))
	case *doc.Verified:
		fmt.Fprintln(w, cli.SuccessStyle.Render("  ✓ total matches items"))
	default:
		fmt.Fprintln(w, cli.WarningStyle.Render(
			fmt.Sprintf("  ✗ total differs from items by %s", doc.Difference.StringFixed(2))))
	}
}

func receiptListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored receipts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			receipts, err := store.ListReceipts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(receipts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no receipts stored")
				return nil
			}

			for _, r := range receipts {
				total := "-"
				if r.Total.Valid {
					total = r.Total.String
				}
				status := cli.SubtleStyle.Render("unverified")
				if r.Verified.Valid && r.Verified.Bool {
					status = cli.SuccessStyle.Render("verified")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-24s %-12s %8s  %d items  %s\n",
					r.ID, r.Merchant, r.ReceiptDate, total, r.ItemCount, status)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "maximum receipts to list")
	return cmd
}
