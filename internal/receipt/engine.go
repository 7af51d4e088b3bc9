package receipt

import (
	"context"
	"image"
	"log/slog"
	"strings"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// TranscriptSource produces a text transcript from a decoded receipt image.
type TranscriptSource interface {
	Transcript(ctx context.Context, img image.Image) (string, error)
}

// Engine composes OCR acquisition, field extraction, item parsing, and
// reconciliation into a single extraction pass. Stateless; one instance
// serves concurrent callers.
type Engine struct {
	source TranscriptSource
}

// NewEngine creates an extraction engine over the given transcript source.
func NewEngine(source TranscriptSource) *Engine {
	return &Engine{source: source}
}

// Extract runs the full pipeline against a decoded image. The only error
// surface is OCR acquisition; everything downstream degrades field-by-field
// instead of failing.
func (e *Engine) Extract(ctx context.Context, img image.Image) (model.ReceiptDocument, error) {
	raw, err := e.source.Transcript(ctx, img)
	if err != nil {
		return model.ReceiptDocument{}, err
	}
	return FromTranscript(raw), nil
}

// FromTranscript builds a structured document from a raw transcript. Pure
// and deterministic: the same transcript always yields the same document.
func FromTranscript(raw string) model.ReceiptDocument {
	lines := splitLines(raw)

	doc := model.ReceiptDocument{RawText: raw}
	doc.Merchant, _ = ExtractMerchant(lines)
	doc.ReceiptDate, _ = ExtractDate(raw)
	if total, ok := ExtractTotal(raw); ok {
		doc.Total = &total
	}
	doc.Items = ParseItems(lines)
	doc.CalculatedTotal, doc.Difference, doc.Verified = Reconcile(doc.Total, doc.Items)

	slog.Debug("Extracted receipt",
		"merchant", doc.Merchant,
		"items", len(doc.Items),
		"has_total", doc.Total != nil)

	return doc
}

// splitLines trims transcript lines and drops empty ones.
func splitLines(raw string) []string {
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
