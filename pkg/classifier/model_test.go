package classifier

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableSamples has disjoint vocabulary per class so a fitted model
// must recover the labels exactly.
func separableSamples() []Sample {
	return []Sample{
		{"hello greetings welcome", CategoryCommon},
		{"greetings friend hello", CategoryCommon},
		{"welcome hello", CategoryCommon},
		{"manager staff department", CategoryEmployees},
		{"department staff roster", CategoryEmployees},
		{"staff manager roster", CategoryEmployees},
		{"inverter panel wattage", CategoryProducts},
		{"panel wattage pricing", CategoryProducts},
		{"inverter pricing panel", CategoryProducts},
		{"quote discount order", CategorySalesman},
		{"order quote invoice", CategorySalesman},
		{"discount invoice quote", CategorySalesman},
	}
}

func TestTrainSeparatesDisjointClasses(t *testing.T) {
	model, err := Train(separableSamples())
	require.NoError(t, err)

	tests := []struct {
		text string
		want Category
	}{
		{"hello welcome", CategoryCommon},
		{"department roster", CategoryEmployees},
		{"inverter wattage", CategoryProducts},
		{"invoice discount", CategorySalesman},
	}
	for _, tt := range tests {
		got, scores := model.Classify(tt.text)
		assert.Equal(t, tt.want, got, "query %q", tt.text)

		var sum float64
		for _, s := range scores {
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestTrainIsDeterministic(t *testing.T) {
	first, err := Train(TrainingData())
	require.NoError(t, err)
	second, err := Train(TrainingData())
	require.NoError(t, err)

	assert.Equal(t, first.Vocabulary, second.Vocabulary)
	assert.Equal(t, first.IDF, second.IDF)
	assert.Equal(t, first.Coefficients, second.Coefficients)
	assert.Equal(t, first.Intercepts, second.Intercepts)
}

func TestTrainRejectsEmptyCorpus(t *testing.T) {
	_, err := Train(nil)
	assert.Error(t, err)
}

func TestModelSaveLoadRoundTrip(t *testing.T) {
	model, err := Train(separableSamples())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "category_model.json")
	require.NoError(t, model.Save(path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)

	query := "inverter wattage pricing"
	wantCategory, wantScores := model.Classify(query)
	gotCategory, gotScores := loaded.Classify(query)

	assert.Equal(t, wantCategory, gotCategory)
	for category, want := range wantScores {
		assert.InDelta(t, want, gotScores[category], 1e-9)
	}
}

func TestLoadModelRejectsInconsistentArtifact(t *testing.T) {
	model, err := Train(separableSamples())
	require.NoError(t, err)

	model.IDF = model.IDF[:1]
	path := filepath.Join(t.TempDir(), "broken_model.json")
	require.NoError(t, model.Save(path))

	_, err = LoadModel(path)
	assert.Error(t, err)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestClassifierFallsBackWithoutModel(t *testing.T) {
	c := NewWithModel(nil)

	assert.False(t, c.ModelLoaded())
	category, _ := c.Classify("Hello")
	assert.Equal(t, CategoryCommon, category)
}

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("I want to Buy a Solar-Panel!")

	assert.Equal(t, []string{"want", "buy", "solar", "panel"}, tokens)
}

func TestTermsIncludeBigrams(t *testing.T) {
	got := terms([]string{"solar", "panel", "cost"})

	assert.Equal(t, []string{"solar", "panel", "cost", "solar panel", "panel cost"}, got)
}
