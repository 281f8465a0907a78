package api

import "fmt"

// ActivityFilter scopes every aggregate query to one activity type.
type ActivityFilter string

const (
	FilterAll   ActivityFilter = "All"
	FilterRide  ActivityFilter = "Ride"
	FilterRun   ActivityFilter = "Run"
	FilterOther ActivityFilter = "Other"
)

// Filters lists the valid filters in cycling order.
var Filters = []ActivityFilter{FilterAll, FilterRide, FilterRun, FilterOther}

// ParseFilter validates a filter string from config or user input.
func ParseFilter(s string) (ActivityFilter, error) {
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown activity filter %q", s)
}

// Next returns the filter after f in cycling order.
func (f ActivityFilter) Next() ActivityFilter {
	for i, v := range Filters {
		if v == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

func (f ActivityFilter) String() string { return string(f) }
