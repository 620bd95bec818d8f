package cart

import (
	"errors"
	"sync"
	"testing"

	"github.com/apnacafe/backend/internal/catalog"
)

func newTestStore() *Store {
	return NewStore(catalog.Default())
}

func TestAddMergesByID(t *testing.T) {
	s := newTestStore()

	if _, err := s.Add(1, 2); err != nil {
		t.Fatalf("Add(1, 2): %v", err)
	}
	got, err := s.Add(1, 3)
	if err != nil {
		t.Fatalf("Add(1, 3): %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("cart has %d entries, want 1", len(got))
	}
	if got[0].Item.ID != 1 || got[0].Quantity != 5 {
		t.Errorf("entry = item %d qty %d, want item 1 qty 5", got[0].Item.ID, got[0].Quantity)
	}
}

func TestAddUnknownItem(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(2, 1)

	_, err := s.Add(999, 1)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Add(999, 1) err = %v, want ErrItemNotFound", err)
	}
	if got := s.List(); len(got) != 1 {
		t.Errorf("cart changed after failed add: %d entries, want 1", len(got))
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(3, 1)
	_, _ = s.Add(1, 1)
	_, _ = s.Add(2, 1)

	got := s.List()
	want := []int{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("cart has %d entries, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].Item.ID != id {
			t.Errorf("entry %d is item %d, want %d", i, got[i].Item.ID, id)
		}
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(1, 2)
	_, _ = s.Add(2, 1)

	got := s.Remove(1)
	if len(got) != 1 || got[0].Item.ID != 2 {
		t.Errorf("after Remove(1): %+v, want only item 2", got)
	}

	// absent id is a no-op, not an error
	got = s.Remove(7)
	if len(got) != 1 || got[0].Item.ID != 2 {
		t.Errorf("after Remove(7): %+v, want unchanged cart", got)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add(1, 2)

	got := s.List()
	got[0].Quantity = 100
	if s.List()[0].Quantity != 2 {
		t.Error("mutating List result changed the store")
	}
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	s := newTestStore()

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.Add(1, 1)
		}()
	}
	wg.Wait()

	got := s.List()
	if len(got) != 1 || got[0].Quantity != goroutines {
		t.Errorf("after %d concurrent adds: %+v, want one entry with qty %d", goroutines, got, goroutines)
	}
}
