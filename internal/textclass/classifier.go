package textclass

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// DefaultConfidenceGate is the minimum probability a prediction needs
// before it is trusted. The corpus is small and the model is confidently
// wrong outside the merchants it has seen, so the gate trades recall for
// precision.
const DefaultConfidenceGate = 0.6

// Config holds classifier construction options.
type Config struct {
	// ModelPath is where the fitted model artifact is cached. When the file
	// exists it is loaded instead of retraining; when absent the model is
	// trained from the embedded corpus and written back. Empty disables
	// caching entirely.
	ModelPath string
	// Gate overrides DefaultConfidenceGate when positive.
	Gate float64
}

// Classifier scores normalized descriptions against the fitted model. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	vectorizer *Vectorizer
	model      *linearModel
	classes    []model.Category
	gate       float64
}

// artifact is the gob-serialized form of a fitted classifier.
type artifact struct {
	Vocab   map[string]int
	Classes []model.Category
	Weights [][]float64
	Bias    []float64
}

// NewClassifier builds a classifier, loading the cached artifact when
// present and otherwise training from the embedded corpus. A stale or
// unreadable artifact is discarded and rebuilt rather than surfaced as an
// error.
func NewClassifier(cfg Config) (*Classifier, error) {
	gate := cfg.Gate
	if gate <= 0 {
		gate = DefaultConfidenceGate
	}

	if cfg.ModelPath != "" {
		if c, err := loadArtifact(cfg.ModelPath, gate); err == nil {
			return c, nil
		} else if !os.IsNotExist(err) {
			slog.Warn("Discarding unreadable model artifact", "path", cfg.ModelPath, "error", err)
		}
	}

	c := train(gate)

	if cfg.ModelPath != "" {
		if err := c.save(cfg.ModelPath); err != nil {
			return nil, fmt.Errorf("failed to cache model artifact: %w", err)
		}
	}
	return c, nil
}

// train fits the model on the embedded corpus.
func train(gate float64) *Classifier {
	corpus := trainingCorpus()

	classIndex := make(map[model.Category]int)
	var classes []model.Category
	texts := make([]string, len(corpus))
	ys := make([]int, len(corpus))
	for i, s := range corpus {
		texts[i] = s.Text
		idx, ok := classIndex[s.Category]
		if !ok {
			idx = len(classes)
			classIndex[s.Category] = idx
			classes = append(classes, s.Category)
		}
		ys[i] = idx
	}

	vectorizer := FitVectorizer(texts)
	xs := make([][]float64, len(texts))
	for i, text := range texts {
		xs[i] = vectorizer.Vector(text)
	}

	return &Classifier{
		vectorizer: vectorizer,
		model:      trainLinearModel(xs, ys, len(classes), vectorizer.Size()),
		classes:    classes,
		gate:       gate,
	}
}

// Classify predicts a category for normalized text. The boolean is false
// when the arg-max probability falls below the confidence gate; the
// returned confidence is reported either way.
func (c *Classifier) Classify(normalized string) (model.Category, float64, bool) {
	idx, confidence := c.model.predict(c.vectorizer.Vector(normalized))
	if confidence < c.gate {
		return model.CategoryUncategorised, confidence, false
	}
	return c.classes[idx], confidence, true
}

func loadArtifact(path string, gate float64) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var a artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	if len(a.Classes) == 0 || len(a.Weights) != len(a.Classes) || len(a.Bias) != len(a.Classes) {
		return nil, fmt.Errorf("model artifact is malformed")
	}

	return &Classifier{
		vectorizer: &Vectorizer{Vocab: a.Vocab},
		model:      &linearModel{Weights: a.Weights, Bias: a.Bias},
		classes:    a.Classes,
		gate:       gate,
	}, nil
}

func (c *Classifier) save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return gob.NewEncoder(f).Encode(artifact{
		Vocab:   c.vectorizer.Vocab,
		Classes: c.classes,
		Weights: c.model.Weights,
		Bias:    c.model.Bias,
	})
}
