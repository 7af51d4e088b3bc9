package ocr

import (
	"context"
	"image"
	"log/slog"
	"regexp"
)

// moneyPattern matches decimal-money tokens like 4.99 inside a transcript.
var moneyPattern = regexp.MustCompile(`\d+\.\d{2}`)

// Acquirer produces a single transcript from a receipt image.
type Acquirer struct {
	backend Backend
}

// NewAcquirer creates an acquirer over the given OCR backend.
func NewAcquirer(backend Backend) *Acquirer {
	return &Acquirer{backend: backend}
}

// Transcript OCRs two preprocessed variants of the image, grayscale with
// contrast stretch and the same with fixed-threshold binarization, and
// returns whichever transcript contains more money-pattern matches.
// Binarization often sharpens digits on low-contrast thermal receipts but
// can destroy text elsewhere, so the choice is outcome-driven: the
// binarized transcript wins only when it strictly recovers more prices.
func (a *Acquirer) Transcript(ctx context.Context, img image.Image) (string, error) {
	stretched := contrastStretch(img)

	basicText, err := a.backend.Recognize(ctx, stretched)
	if err != nil {
		return "", err
	}

	threshText, err := a.backend.Recognize(ctx, binarize(stretched, binarizeThreshold))
	if err != nil {
		return "", err
	}

	return selectTranscript(basicText, threshText), nil
}

// selectTranscript applies the money-pattern vote between the two variants.
func selectTranscript(basicText, threshText string) string {
	basicPrices := len(moneyPattern.FindAllString(basicText, -1))
	threshPrices := len(moneyPattern.FindAllString(threshText, -1))

	slog.Debug("Selected OCR variant",
		"contrast_prices", basicPrices,
		"binarized_prices", threshPrices,
		"binarized_won", threshPrices > basicPrices)

	if threshPrices > basicPrices {
		return threshText
	}
	return basicText
}
