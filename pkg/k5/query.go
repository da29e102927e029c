package k5

import (
	"net/url"
	"sort"
)

// QueryParams represents filter parameters for list operations. The
// networking and image services accept exact-match attribute filters such
// as name or network_id.
type QueryParams struct {
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithFilter adds a filter value and returns the receiver for chaining.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// ToValues converts the parameters to url.Values with deterministic key
// ordering.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if q == nil || len(q.Filters) == 0 {
		return values
	}

	keys := make([]string, 0, len(q.Filters))
	for key := range q.Filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		for _, value := range q.Filters[key] {
			values.Add(key, value)
		}
	}

	return values
}
