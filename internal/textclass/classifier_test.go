package textclass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(Config{})
	require.NoError(t, err)
	return c
}

func TestClassifyKnownMerchants(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		text string
		want model.Category
	}{
		{"TESCO STORES", model.CategoryGroceries},
		{"MCDONALDS", model.CategoryFood},
		{"UBER TRIP", model.CategoryTransport},
		{"NETFLIX", model.CategorySubscription},
		{"PUREGYM", model.CategoryFitness},
		{"BRITISH GAS", model.CategoryUtilities},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, confidence, ok := c.Classify(tt.text)
			require.True(t, ok, "confidence %.3f below gate", confidence)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, confidence, DefaultConfidenceGate)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}

func TestClassifyGatesUnseenText(t *testing.T) {
	c := newTestClassifier(t)

	// Nothing in the corpus shares a term with this, so the model falls
	// back to its class priors, which are far below the gate.
	got, confidence, ok := c.Classify("XYLOPHONE WHOLESALE LTD")
	assert.False(t, ok)
	assert.Less(t, confidence, DefaultConfidenceGate)
	assert.Equal(t, model.CategoryUncategorised, got)
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := newTestClassifier(t)

	catA, confA, okA := c.Classify("TESCO STORES")
	catB, confB, okB := c.Classify("TESCO STORES")

	assert.Equal(t, catA, catB)
	assert.Equal(t, confA, confB)
	assert.Equal(t, okA, okB)
}

func TestArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model", "category_model.gob")

	trained, err := NewClassifier(Config{ModelPath: path})
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "artifact should be written back after training")

	loaded, err := NewClassifier(Config{ModelPath: path})
	require.NoError(t, err)

	wantCat, wantConf, wantOK := trained.Classify("SPOTIFY")
	gotCat, gotConf, gotOK := loaded.Classify("SPOTIFY")
	assert.Equal(t, wantCat, gotCat)
	assert.InDelta(t, wantConf, gotConf, 1e-12)
	assert.Equal(t, wantOK, gotOK)
}

func TestCorruptArtifactTriggersRetrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0o600))

	c, err := NewClassifier(Config{ModelPath: path})
	require.NoError(t, err)

	got, _, ok := c.Classify("TESCO STORES")
	require.True(t, ok)
	assert.Equal(t, model.CategoryGroceries, got)
}

func TestCorpusSpansAllExpenseCategories(t *testing.T) {
	seen := make(map[model.Category]bool)
	for _, s := range trainingCorpus() {
		seen[s.Category] = true
	}

	for _, c := range model.AllCategories() {
		if c == model.CategoryIncome || c == model.CategoryUncategorised {
			continue
		}
		assert.True(t, seen[c], "corpus has no examples for %s", c)
	}
}
