package classifier

import (
	"fmt"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Model is the trained linear classifier artifact. Coefficients is one
// row per category in class order, one column per vocabulary feature.
type Model struct {
	Categories   []string       `json:"categories"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Coefficients [][]float64    `json:"coefficients"`
	Intercepts   []float64      `json:"intercepts"`
}

func LoadModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var model Model
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("malformed model file %s: %w", path, err)
	}

	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("inconsistent model file %s: %w", path, err)
	}

	return &model, nil
}

func (m *Model) validate() error {
	n := len(m.Vocabulary)
	if n == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(m.IDF) != n {
		return fmt.Errorf("idf length %d does not match vocabulary size %d", len(m.IDF), n)
	}
	if len(m.Categories) == 0 {
		return fmt.Errorf("no categories")
	}
	if len(m.Coefficients) != len(m.Categories) {
		return fmt.Errorf("coefficient rows %d do not match categories %d", len(m.Coefficients), len(m.Categories))
	}
	for i, row := range m.Coefficients {
		if len(row) != n {
			return fmt.Errorf("coefficient row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(m.Intercepts) != len(m.Categories) {
		return fmt.Errorf("intercepts %d do not match categories %d", len(m.Intercepts), len(m.Categories))
	}
	for _, c := range m.Categories {
		if _, err := ParseCategory(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) Save(path string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// vectorize builds the L2-normalized TF-IDF feature vector of a text.
func (m *Model) vectorize(text string) []float64 {
	vec := make([]float64, len(m.Vocabulary))

	for _, term := range terms(tokenize(text)) {
		if idx, ok := m.Vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx := range vec {
		if vec[idx] > 0 {
			vec[idx] *= m.IDF[idx]
			norm += vec[idx] * vec[idx]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}

	return vec
}

// Classify scores a text against every category and softmaxes the
// linear scores into probabilities. Ties break to the lowest class
// index, matching argmax over the score slice.
func (m *Model) Classify(text string) (Category, map[Category]float64) {
	vec := m.vectorize(text)

	scores := make([]float64, len(m.Categories))
	for i, row := range m.Coefficients {
		s := m.Intercepts[i]
		for j, x := range vec {
			if x != 0 {
				s += row[j] * x
			}
		}
		scores[i] = s
	}

	probs := softmax(scores)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	confidence := make(map[Category]float64, len(m.Categories))
	for i, c := range m.Categories {
		confidence[Category(c)] = probs[i]
	}

	return Category(m.Categories[best]), confidence
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
