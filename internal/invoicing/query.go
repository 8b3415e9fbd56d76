package invoicing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// monthLastDay is the last day used in a month filter. February is always 29:
// the API filter does not take leap years into account.
var monthLastDay = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// YearQuery returns the date predicate covering a whole year.
func YearQuery(year int) string {
	return fmt.Sprintf("date >= '%d-01-01' and date <= '%d-12-31'", year, year)
}

// MonthQuery returns the date predicate covering one month of a year.
func MonthQuery(year, month int) string {
	return fmt.Sprintf("date >= '%d-%02d-01' and date <= '%d-%02d-%d'",
		year, month, year, month, monthLastDay[month])
}

// dateQuery picks the month predicate when a month is given.
func dateQuery(year int, month *int) string {
	if month != nil && *month >= 1 && *month <= 12 {
		return MonthQuery(year, *month)
	}
	return YearQuery(year)
}

// textFilter matches records whose searchable text contains the query,
// ignoring case. An empty query matches everything.
type textFilter struct {
	needle string
	fold   cases.Caser
}

func newTextFilter(query string) *textFilter {
	f := &textFilter{fold: cases.Fold()}
	f.needle = f.fold.String(query)
	return f
}

func (f *textFilter) Match(fields ...string) bool {
	if f.needle == "" {
		return true
	}
	return strings.Contains(f.fold.String(strings.Join(fields, " ")), f.needle)
}
