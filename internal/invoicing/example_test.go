package invoicing_test

import (
	"fmt"

	"fattureincloud-mcp/internal/invoicing"
)

// ExampleMonthQuery shows the date predicate sent for a month listing.
// February always ends on the 29th.
func ExampleMonthQuery() {
	fmt.Println(invoicing.MonthQuery(2025, 2))
	fmt.Println(invoicing.MonthQuery(2025, 11))
	// Output:
	// date >= '2025-02-01' and date <= '2025-02-29'
	// date >= '2025-11-01' and date <= '2025-11-30'
}

func ExampleYearQuery() {
	fmt.Println(invoicing.YearQuery(2024))
	// Output: date >= '2024-01-01' and date <= '2024-12-31'
}
