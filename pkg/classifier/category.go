package classifier

import "fmt"

// Category is the routing label assigned to every user message.
type Category string

const (
	CategoryCommon    Category = "common"
	CategoryEmployees Category = "employees"
	CategoryProducts  Category = "products"
	CategorySalesman  Category = "salesman"
)

// Categories lists every category in class order. The order matters:
// trained model coefficients are indexed by it.
var Categories = []Category{
	CategoryCommon,
	CategoryEmployees,
	CategoryProducts,
	CategorySalesman,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}
