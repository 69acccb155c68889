// Package cart owns the shopping cart: an ordered list of line items that
// survives restarts, plus the transient open/closed drawer flag.
//
// All operations are total — they cannot fail from the caller's point of
// view. Persistence errors are logged and the in-memory state stays
// authoritative until the next successful save.
package cart

import (
	"sync"

	"github.com/ahmadsvu/stationery-hub-frontend/app/models"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/collection"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/event"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
)

// Store is the single source of truth for the cart. Create one at boot and
// inject it; do not reach for package-level state.
type Store struct {
	mu     sync.Mutex
	items  []models.CartItem
	open   bool
	driver Driver
}

// NewStore loads the persisted cart through driver. A load failure is not
// fatal: the store starts empty and logs the problem.
func NewStore(driver Driver) *Store {
	s := &Store{driver: driver}

	items, err := driver.Load()
	if err != nil {
		logger.Warn("cart: could not load persisted cart, starting empty", "error", err)
		return s
	}
	s.items = items
	return s
}

// AddToCart adds one unit of product. If the product is already in the
// cart its quantity goes up by 1; duplicates are never appended.
func (s *Store) AddToCart(p models.Product) {
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, models.CartItem{Product: p, Quantity: 1})
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// RemoveFromCart drops the line with the given product id.
// Removing an absent id is a no-op, not an error.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	s.items = collection.Reject(s.items, func(i models.CartItem) bool {
		return i.ID == productID
	})
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less
// behaves exactly like RemoveFromCart. No upper bound is enforced — this
// client has no inventory concept.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// ToggleCart flips the drawer flag and returns the new value. The flag is
// deliberately not persisted.
func (s *Store) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// IsOpen reports the drawer flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// ClearCart empties the cart. Used by "empty cart" and after a successful
// checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.items = nil
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snapshot)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subtotal is Σ price × quantity over all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Sum(s.items, models.CartItem.LineTotal)
}

// Count is Σ quantity — the number shown on the cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, i := range s.items {
		n += i.Quantity
	}
	return n
}

func (s *Store) snapshotLocked() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// persist saves outside the lock so a slow driver never blocks readers, and
// fires cart.updated for the badge stream and metrics.
func (s *Store) persist(snapshot []models.CartItem) {
	if err := s.driver.Save(snapshot); err != nil {
		logger.Warn("cart: persist failed", "error", err, "items", len(snapshot))
	}
	event.Fire(event.CartUpdated, snapshot)
}
