package search

import (
	"strings"

	"github.com/nconklindev/stockcell/internal/types"

	"golang.org/x/text/cases"
)

// State is the outcome of evaluating a query.
type State int

const (
	StateEmpty State = iota
	StateSearching
	StateFound
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not found"
	}
	return "unknown"
}

// Result of a single-product lookup. Product is only set when State is
// StateFound.
type Result struct {
	State   State
	Product types.Product
	// Index is the position of Product in the searched list, or -1.
	Index int
}

func (r Result) Found() bool {
	return r.State == StateFound
}

// Lookup returns the first product whose ID or Article contains query,
// ignoring case. A blank query yields StateEmpty.
func Lookup(query string, products []types.Product) Result {
	if strings.TrimSpace(query) == "" {
		return Result{State: StateEmpty, Index: -1}
	}

	m := newMatcher(query)
	for i, p := range products {
		if m.matches(p.Article) || m.matches(p.ID) {
			return Result{State: StateFound, Product: p, Index: i}
		}
	}

	return Result{State: StateNotFound, Index: -1}
}

// Filter returns, in original order, the products whose Article, Name or
// Cell contains query, ignoring case. An empty query keeps everything.
func Filter(query string, products []types.Product) []types.Product {
	if query == "" {
		out := make([]types.Product, len(products))
		copy(out, products)
		return out
	}

	m := newMatcher(query)
	out := make([]types.Product, 0, len(products))
	for _, p := range products {
		if m.matches(p.Article) || m.matches(p.Name) || m.matches(p.Cell) {
			out = append(out, p)
		}
	}

	return out
}

type matcher struct {
	caser  cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	m := &matcher{caser: cases.Fold()}
	m.needle = m.caser.String(query)
	return m
}

func (m *matcher) matches(field string) bool {
	return strings.Contains(m.caser.String(field), m.needle)
}
