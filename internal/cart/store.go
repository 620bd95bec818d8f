package cart

import (
	"errors"
	"sync"

	"github.com/apnacafe/backend/internal/catalog"
)

var ErrItemNotFound = errors.New("item not found")

// Entry is one cart line: a catalog item and the requested quantity.
type Entry struct {
	Item     catalog.Item `json:"item"`
	Quantity int          `json:"quantity"`
}

// Store holds the single process-wide cart. Access is serialized so
// concurrent adds on the same item cannot lose an increment; the cart is
// still shared by all clients of the process.
type Store struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	entries []Entry
}

func NewStore(c *catalog.Catalog) *Store {
	return &Store{catalog: c}
}

// Add merges qty into the entry for itemID, appending a new entry for items
// not yet in the cart. Quantities are taken as sent; nothing prunes an entry
// whose quantity ends up non-positive. Returns the resulting cart.
func (s *Store) Add(itemID, qty int) ([]Entry, error) {
	it, ok := s.catalog.Get(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Item.ID == itemID {
			s.entries[i].Quantity += qty
			return s.snapshot(), nil
		}
	}
	s.entries = append(s.entries, Entry{Item: it, Quantity: qty})
	return s.snapshot(), nil
}

func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Remove drops every entry for itemID. Removing an absent id is a no-op.
func (s *Store) Remove(itemID int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Item.ID != itemID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return s.snapshot()
}

// snapshot copies the entries so callers never alias the shared slice.
// Callers must hold mu.
func (s *Store) snapshot() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
