package textclass

import "math"

// linearModel is a multinomial logistic (softmax) classifier. Weights are
// laid out per class over the vectorizer's feature space.
type linearModel struct {
	Weights [][]float64
	Bias    []float64
}

// Training hyperparameters. The corpus is tiny, so full-batch gradient
// descent with a fixed schedule converges in well under a second and is
// fully deterministic.
const (
	trainEpochs = 500
	trainRate   = 0.5
)

// trainLinearModel fits a softmax classifier on the given feature vectors
// and class indices.
func trainLinearModel(xs [][]float64, ys []int, classCount, featureCount int) *linearModel {
	m := &linearModel{
		Weights: make([][]float64, classCount),
		Bias:    make([]float64, classCount),
	}
	for c := range m.Weights {
		m.Weights[c] = make([]float64, featureCount)
	}

	scale := trainRate / float64(len(xs))
	for epoch := 0; epoch < trainEpochs; epoch++ {
		for i, x := range xs {
			probs := m.distribution(x)
			for c := 0; c < classCount; c++ {
				grad := probs[c]
				if c == ys[i] {
					grad -= 1
				}
				step := scale * grad
				m.Bias[c] -= step
				for f, xv := range x {
					if xv != 0 {
						m.Weights[c][f] -= step * xv
					}
				}
			}
		}
	}
	return m
}

// distribution returns the softmax probability distribution over classes.
func (m *linearModel) distribution(x []float64) []float64 {
	scores := make([]float64, len(m.Bias))
	maxScore := math.Inf(-1)
	for c := range scores {
		s := m.Bias[c]
		for f, xv := range x {
			if xv != 0 {
				s += m.Weights[c][f] * xv
			}
		}
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for c, s := range scores {
		e := math.Exp(s - maxScore)
		scores[c] = e
		sum += e
	}
	for c := range scores {
		scores[c] /= sum
	}
	return scores
}

// predict returns the arg-max class index and its probability.
func (m *linearModel) predict(x []float64) (int, float64) {
	probs := m.distribution(x)
	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}
	return best, probs[best]
}
