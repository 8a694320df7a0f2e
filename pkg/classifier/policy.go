package classifier

import "fmt"

// Lookup names a relational fetch the orchestrator may run for a category.
type Lookup string

const (
	LookupProducts  Lookup = "search_products"
	LookupSalesmen  Lookup = "search_salesmen"
	LookupEmployees Lookup = "search_employees"
)

// Verbosity controls how long the LLM reply should be.
type Verbosity string

const (
	VerbosityShort    Verbosity = "short"
	VerbosityDetailed Verbosity = "detailed"
)

// Policy describes what the pipeline does once a message is categorized.
type Policy struct {
	FetchData          bool
	Lookups            []Lookup
	Verbosity          Verbosity
	MaxRecommendations int
	Description        string
}

// PolicyFor returns the hard-coded handling policy for a category.
// Panics on anything outside the known category set so a miswired
// classifier fails loudly at startup tests rather than serving traffic.
func PolicyFor(category Category) Policy {
	switch category {
	case CategoryCommon:
		return Policy{
			FetchData:          false,
			Lookups:            nil,
			Verbosity:          VerbosityShort,
			MaxRecommendations: 0,
			Description:        "General queries, greetings, or simple questions",
		}
	case CategoryProducts:
		return Policy{
			FetchData:          true,
			Lookups:            []Lookup{LookupProducts},
			Verbosity:          VerbosityDetailed,
			MaxRecommendations: 2,
			Description:        "Product-related queries, pricing, specifications",
		}
	case CategorySalesman:
		return Policy{
			FetchData:          true,
			Lookups:            []Lookup{LookupSalesmen, LookupProducts},
			Verbosity:          VerbosityDetailed,
			MaxRecommendations: 2,
			Description:        "Sales inquiries, purchasing assistance, quotes",
		}
	case CategoryEmployees:
		return Policy{
			FetchData:          true,
			Lookups:            []Lookup{LookupEmployees},
			Verbosity:          VerbosityDetailed,
			MaxRecommendations: 2,
			Description:        "Employee information, departments, staff contacts",
		}
	default:
		panic(fmt.Sprintf("no policy for category %q", category))
	}
}
