package service

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

var _ port.CartManager = (*CartService)(nil)

// A CartService holds the client-local cart. Entries keep insertion
// order and are decoupled from later catalog mutations. The total is
// recomputed on every read, never stored.
type CartService struct {
	mu    sync.Mutex
	items []domain.CartItem
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add puts the product in the cart. Adding an already-present product
// increments its quantity instead of duplicating the entry.
func (s *CartService) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
}

// Remove drops the whole entry for the product id, not one unit.
// No-op when the id is not in the cart.
func (s *CartService) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot copy of the cart entries.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the sum of price times quantity over all entries.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Count is the number of units in the cart, summed over quantities.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}
