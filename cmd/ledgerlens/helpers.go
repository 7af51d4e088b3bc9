package main

import (
	"fmt"
	"image"
	_ "image/jpeg" // receipt photo decoders
	_ "image/png"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/ledgerlens/ledgerlens/internal/categorize"
	"github.com/ledgerlens/ledgerlens/internal/common"
	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/rules"
	"github.com/ledgerlens/ledgerlens/internal/storage"
	"github.com/ledgerlens/ledgerlens/internal/textclass"
)

// initStore opens the SQLite store at the configured path.
func initStore() (*storage.Store, error) {
	path := config.DatabasePath(viper.GetString("database.path"))
	store, err := storage.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return store, nil
}

// initCategorizer builds the categorization pipeline, loading or training
// the statistical model at the configured artifact path.
func initCategorizer() (*categorize.Categorizer, error) {
	stats, err := textclass.NewClassifier(textclass.Config{
		ModelPath: config.ModelPath(viper.GetString("model.path")),
	})
	if err != nil {
		return nil, err
	}
	return categorize.New(rules.NewClassifier(rules.DefaultRules()), stats), nil
}

// decodeImage reads a PNG or JPEG receipt photo. Format validation happens
// here at the boundary; the extraction engine only ever sees decoded
// rasters.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return decodeImageReader(f)
}

func decodeImageReader(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, common.NewUserError("only PNG and JPEG receipts are supported", common.ErrInvalidImage)
	}
	switch format {
	case "png", "jpeg":
		return img, nil
	default:
		return nil, common.NewUserError(
			fmt.Sprintf("only PNG and JPEG receipts are supported, got %s", format),
			common.ErrInvalidImage)
	}
}
