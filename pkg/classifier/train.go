package classifier

import (
	"errors"
	"math"
	"sort"
)

const (
	maxFeatures  = 1000
	trainEpochs  = 500
	learningRate = 1.0
	l2Penalty    = 0.01
)

// Train fits the TF-IDF vocabulary and a multinomial logistic
// regression on the samples. The whole procedure is deterministic:
// zero-initialized weights, full-batch gradient descent, fixed epoch
// count, and a vocabulary ordered by document frequency with an
// alphabetical tie-break.
func Train(samples []Sample) (*Model, error) {
	if len(samples) == 0 {
		return nil, errors.New("no training samples")
	}

	docs := make([][]string, len(samples))
	df := map[string]int{}
	for i, s := range samples {
		docs[i] = terms(tokenize(s.Text))
		seen := map[string]struct{}{}
		for _, t := range docs[i] {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	type termFreq struct {
		term string
		df   int
	}
	ranked := make([]termFreq, 0, len(df))
	for t, n := range df {
		ranked = append(ranked, termFreq{t, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].df != ranked[j].df {
			return ranked[i].df > ranked[j].df
		}
		return ranked[i].term < ranked[j].term
	})
	if len(ranked) > maxFeatures {
		ranked = ranked[:maxFeatures]
	}

	vocab := make(map[string]int, len(ranked))
	for idx, tf := range ranked {
		vocab[tf.term] = idx
	}

	// Smoothed idf, the same formula the scorer applies at inference.
	n := float64(len(samples))
	idf := make([]float64, len(vocab))
	for term, idx := range vocab {
		idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	model := &Model{
		Categories: make([]string, len(Categories)),
		Vocabulary: vocab,
		IDF:        idf,
	}
	classIndex := map[Category]int{}
	for i, c := range Categories {
		model.Categories[i] = string(c)
		classIndex[c] = i
	}

	features := make([][]float64, len(samples))
	labels := make([]int, len(samples))
	for i, s := range samples {
		features[i] = model.vectorize(s.Text)
		idx, ok := classIndex[s.Label]
		if !ok {
			return nil, errors.New("sample with unknown label: " + string(s.Label))
		}
		labels[i] = idx
	}

	numClasses := len(Categories)
	numFeatures := len(vocab)
	weights := make([][]float64, numClasses)
	for k := range weights {
		weights[k] = make([]float64, numFeatures)
	}
	intercepts := make([]float64, numClasses)

	gradW := make([][]float64, numClasses)
	for k := range gradW {
		gradW[k] = make([]float64, numFeatures)
	}
	gradB := make([]float64, numClasses)
	scores := make([]float64, numClasses)

	for epoch := 0; epoch < trainEpochs; epoch++ {
		for k := range gradW {
			for j := range gradW[k] {
				gradW[k][j] = 0
			}
			gradB[k] = 0
		}

		for i, x := range features {
			for k := 0; k < numClasses; k++ {
				s := intercepts[k]
				for j, v := range x {
					if v != 0 {
						s += weights[k][j] * v
					}
				}
				scores[k] = s
			}
			probs := softmax(scores)

			for k := 0; k < numClasses; k++ {
				delta := probs[k]
				if k == labels[i] {
					delta -= 1
				}
				if delta == 0 {
					continue
				}
				for j, v := range x {
					if v != 0 {
						gradW[k][j] += delta * v
					}
				}
				gradB[k] += delta
			}
		}

		step := learningRate / n
		for k := 0; k < numClasses; k++ {
			for j := 0; j < numFeatures; j++ {
				weights[k][j] -= step * (gradW[k][j] + l2Penalty*weights[k][j])
			}
			intercepts[k] -= step * gradB[k]
		}
	}

	model.Coefficients = weights
	model.Intercepts = intercepts

	return model, nil
}
