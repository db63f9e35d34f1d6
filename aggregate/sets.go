package aggregate

import (
	"encoding/json"
	"sort"
)

// PageSet is a set of page numbers. It marshals as a sorted array so JSON
// output is deterministic.
type PageSet map[int]struct{}

// Add inserts a page number.
func (s PageSet) Add(page int) {
	s[page] = struct{}{}
}

// Contains reports membership.
func (s PageSet) Contains(page int) bool {
	_, ok := s[page]
	return ok
}

// Sorted returns the pages in ascending order.
func (s PageSet) Sorted() []int {
	pages := make([]int, 0, len(s))
	for p := range s {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// MarshalJSON renders the set as a sorted array.
func (s PageSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// StringSet is a set of strings that marshals as a sorted array.
type StringSet map[string]struct{}

// Add inserts a value.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Contains reports membership.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the values in lexical order.
func (s StringSet) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// MarshalJSON renders the set as a sorted array.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
