// Package ocr turns decoded receipt images into text transcripts. Two
// preprocessing variants are run through the OCR backend and the transcript
// that recovered more money-like tokens wins.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Backend recognizes text in a decoded image. Implementations are expected
// to be CPU/IO bound with no timeout of their own; callers needing bounded
// latency impose a context deadline.
type Backend interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Tesseract is a Backend backed by the system Tesseract engine.
type Tesseract struct {
	// Language is the Tesseract language code, "eng" when empty.
	Language string
}

// Recognize runs Tesseract over the image and returns the raw transcript.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	lang := t.Language
	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to load image into OCR engine: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR recognition failed: %w", err)
	}
	return text, nil
}
