package catalog

import (
	"sync"
	"testing"

	"github.com/nconklindev/stockcell/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReplaceDiscardsPreviousList(t *testing.T) {
	s := NewStore(SampleProducts()...)
	require.Equal(t, 8, s.Len())

	s.Replace([]types.Product{{ID: "1", Article: "X-1", Cell: "Z-01"}})

	got := s.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "X-1", got[0].Article)
}

func TestStore_ReplaceCopiesInput(t *testing.T) {
	in := []types.Product{{ID: "1", Cell: "A-01"}}
	s := NewStore()
	s.Replace(in)

	in[0].Cell = "mutated"

	assert.Equal(t, "A-01", s.Snapshot()[0].Cell)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore(SampleProducts()...)
	snap := s.Snapshot()
	snap[0].Cell = "mutated"

	assert.Equal(t, "A-12", s.Snapshot()[0].Cell)
}

func TestStore_ExtraIsNotShared(t *testing.T) {
	in := []types.Product{{ID: "1", Extra: map[string]string{"Supplier": "Acme"}}}
	s := NewStore()
	s.Replace(in)

	in[0].Extra["Supplier"] = "mutated"
	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "Acme", snap[0].Extra["Supplier"])

	snap[0].Extra["Supplier"] = "changed"
	assert.Equal(t, "Acme", s.Snapshot()[0].Extra["Supplier"])
}

func TestStore_EmptyStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot())
}

func TestStore_ConcurrentReadersSeeWholeLists(t *testing.T) {
	small := []types.Product{{ID: "1"}}
	large := SampleProducts()
	s := NewStore(small...)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace(large)
			s.Replace(small)
		}()
		go func() {
			defer wg.Done()
			n := len(s.Snapshot())
			assert.True(t, n == len(small) || n == len(large), "partial snapshot of %d products", n)
		}()
	}
	wg.Wait()
}
