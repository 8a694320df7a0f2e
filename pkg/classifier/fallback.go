package classifier

import "strings"

var productsKeywords = []string{
	"buy", "purchase", "price", "cost", "product", "solar",
	"generator", "inverter", "panel", "battery", "equipment",
	"specification", "specs", "model", "warranty",
}

var salesmanKeywords = []string{
	"sales", "salesman", "representative", "agent",
	"quote", "deal", "discount", "order",
}

var employeesKeywords = []string{
	"employee", "staff", "department", "position",
	"manager", "contact", "office", "team",
}

// technicianKeywords boost the salesman category: repair requests are
// routed to sales staff with technical specialities.
var technicianKeywords = []string{
	"technician", "repair", "fix", "problem", "issue",
	"fault", "broken", "not working", "maintenance",
	"install", "installation", "service",
}

func countMatches(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}

// fallbackClassify is the keyword scorer used when no trained model is
// available. It never errors and always returns a full score map.
func fallbackClassify(text string) (Category, map[Category]float64) {
	lower := strings.ToLower(text)

	productsScore := countMatches(lower, productsKeywords)
	salesmanScore := countMatches(lower, salesmanKeywords)
	employeesScore := countMatches(lower, employeesKeywords)

	if countMatches(lower, technicianKeywords) > 0 {
		salesmanScore += 2
	}

	maxScore := productsScore
	if salesmanScore > maxScore {
		maxScore = salesmanScore
	}
	if employeesScore > maxScore {
		maxScore = employeesScore
	}

	if maxScore == 0 {
		return CategoryCommon, map[Category]float64{
			CategoryCommon:    0.7,
			CategoryEmployees: 0.1,
			CategoryProducts:  0.1,
			CategorySalesman:  0.1,
		}
	}

	total := float64(productsScore+salesmanScore+employeesScore) + 0.1
	scores := map[Category]float64{
		CategoryProducts:  float64(productsScore) / total,
		CategorySalesman:  float64(salesmanScore) / total,
		CategoryEmployees: float64(employeesScore) / total,
		CategoryCommon:    0.1 / total,
	}

	// Ties resolve products > salesman > employees.
	predicted := CategoryProducts
	best := productsScore
	if salesmanScore > best {
		predicted = CategorySalesman
		best = salesmanScore
	}
	if employeesScore > best {
		predicted = CategoryEmployees
	}

	return predicted, scores
}
