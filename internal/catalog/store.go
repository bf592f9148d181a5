package catalog

import (
	"maps"
	"sync"

	"github.com/nconklindev/stockcell/internal/types"
)

// Store owns the current product list. The only mutation is Replace, which
// swaps the whole list; readers always see one complete list.
type Store struct {
	mu       sync.RWMutex
	products []types.Product
}

func NewStore(products ...types.Product) *Store {
	s := &Store{}
	s.Replace(products)
	return s
}

// Replace discards the current list and installs a deep copy of products.
func (s *Store) Replace(products []types.Product) {
	next := cloneProducts(products)

	s.mu.Lock()
	s.products = next
	s.mu.Unlock()
}

// Snapshot returns a copy of the current list in import order.
func (s *Store) Snapshot() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProducts(s.products)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// cloneProducts copies the slice and every Extra map so neither side can
// reach the other's rows.
func cloneProducts(products []types.Product) []types.Product {
	out := make([]types.Product, len(products))
	copy(out, products)
	for i := range out {
		if out[i].Extra != nil {
			out[i].Extra = maps.Clone(out[i].Extra)
		}
	}
	return out
}
