// Package textclass implements the statistical description classifier: a
// bag-of-terms vectorizer feeding a multinomial logistic model trained once
// on a small embedded merchant corpus.
package textclass

import "strings"

// Vectorizer maps normalized text onto a fixed feature space of unigrams
// and bigrams. Immutable once fitted.
type Vectorizer struct {
	Vocab map[string]int
}

// terms splits normalized text into unigram and bigram terms.
func terms(normalized string) []string {
	words := strings.Fields(normalized)
	out := make([]string, 0, len(words)*2)
	out = append(out, words...)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}

// FitVectorizer builds a vocabulary over the training texts. Indices are
// assigned in first-seen order so fitting is deterministic.
func FitVectorizer(texts []string) *Vectorizer {
	vocab := make(map[string]int)
	for _, text := range texts {
		for _, term := range terms(text) {
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
		}
	}
	return &Vectorizer{Vocab: vocab}
}

// Size returns the feature-space dimension.
func (v *Vectorizer) Size() int {
	return len(v.Vocab)
}

// Vector returns the term-count feature vector for normalized text. Terms
// outside the vocabulary are ignored, so unseen descriptions map to sparse
// or zero vectors.
func (v *Vectorizer) Vector(normalized string) []float64 {
	x := make([]float64, len(v.Vocab))
	for _, term := range terms(normalized) {
		if idx, ok := v.Vocab[term]; ok {
			x[idx]++
		}
	}
	return x
}
