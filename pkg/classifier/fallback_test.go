package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackClassifyGreeting(t *testing.T) {
	category, scores := fallbackClassify("Hello")

	assert.Equal(t, CategoryCommon, category)
	assert.InDelta(t, 0.7, scores[CategoryCommon], 1e-9)
	assert.InDelta(t, 0.1, scores[CategoryProducts], 1e-9)
	assert.InDelta(t, 0.1, scores[CategorySalesman], 1e-9)
	assert.InDelta(t, 0.1, scores[CategoryEmployees], 1e-9)
}

func TestFallbackClassifyProducts(t *testing.T) {
	category, scores := fallbackClassify("I want to buy a solar panel")

	assert.Equal(t, CategoryProducts, category)
	assert.Greater(t, scores[CategoryProducts], scores[CategorySalesman])
	assert.Greater(t, scores[CategoryProducts], scores[CategoryEmployees])
}

func TestFallbackClassifyTechnicianBoost(t *testing.T) {
	// "broken" is a technician keyword, which routes to salesman even
	// though "generator" alone would score products.
	category, scores := fallbackClassify("My generator is broken")

	assert.Equal(t, CategorySalesman, category)
	assert.Greater(t, scores[CategorySalesman], scores[CategoryProducts])
}

func TestFallbackClassifyEmployees(t *testing.T) {
	category, _ := fallbackClassify("Who is the manager of the finance department?")

	assert.Equal(t, CategoryEmployees, category)
}

func TestFallbackTieBreaksProductsFirst(t *testing.T) {
	// One keyword hit per category: products wins ties.
	category, _ := fallbackClassify("price sales employee")

	assert.Equal(t, CategoryProducts, category)
}

func TestFallbackScoresAreDistribution(t *testing.T) {
	for _, text := range []string{"Hello", "buy solar panel", "broken generator", "staff manager"} {
		_, scores := fallbackClassify(text)

		var sum float64
		for _, s := range scores {
			assert.GreaterOrEqual(t, s, 0.0)
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 0.05, "scores for %q should be near a distribution", text)
	}
}
