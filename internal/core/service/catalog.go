package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

// LoadErrMsg is the fixed user-facing message recorded on a failed load.
const LoadErrMsg = "Error al cargar los productos"

var _ port.ProductsReader = (*CatalogService)(nil)
var _ port.CatalogLoader = (*CatalogService)(nil)
var _ port.CatalogEditor = (*CatalogService)(nil)

// A CatalogService owns the product list and derives everything the
// presentation layer reads from it. Derived values are recomputed on
// every read; there is no hidden memoization.
type CatalogService struct {
	mu       sync.RWMutex
	source   port.CatalogSource
	products []domain.Product
	loading  bool
	loadErr  error
	gen      uint64
}

func NewCatalogService(source port.CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// Load replaces the product list wholesale with the source's response.
// On failure the list is left as it was and the error state is set;
// there is no automatic retry. A load superseded by a newer Load call
// discards its result instead of applying it to stale state.
func (s *CatalogService) Load(ctx context.Context) error {
	const op = "CatalogService.Load"
	log := slog.With("op", op)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.loadErr = nil
	s.mu.Unlock()

	ps, err := s.source.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		log.Debug("discarding superseded load result", "gen", gen)
		return nil
	}

	s.loading = false
	if err != nil {
		s.loadErr = fmt.Errorf("%s: %w", LoadErrMsg, err)
		log.Error("failed to load products", "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.products = ps
	log.Info("catalog loaded", "nProducts", len(ps))
	return nil
}

// Loading reports whether a load is in flight.
func (s *CatalogService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error recorded by the last failed load, nil otherwise.
func (s *CatalogService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Products returns a snapshot copy of the catalog.
func (s *CatalogService) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps := make([]domain.Product, len(s.products))
	copy(ps, s.products)
	return ps
}

func (s *CatalogService) ProductByID(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Categories returns the distinct category labels in order of first
// appearance in the catalog.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cs []string
	seen := make(map[string]struct{})
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cs = append(cs, p.Category)
	}
	return cs
}

// Statuses returns the distinct status labels in order of first
// appearance in the catalog.
func (s *CatalogService) Statuses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ss []string
	seen := make(map[domain.ProductStatus]struct{})
	for _, p := range s.products {
		if _, ok := seen[p.Status]; ok {
			continue
		}
		seen[p.Status] = struct{}{}
		ss = append(ss, string(p.Status))
	}
	return ss
}

// AddProduct appends the product to the catalog.
func (s *CatalogService) AddProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// UpdateProduct replaces the product with the same id.
// No-op when the id is not in the catalog.
func (s *CatalogService) UpdateProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// UpdateStock adjusts the product's stock by delta, clamping at zero.
// A product that reaches zero stock is marked sold out. No-op when the
// id is not in the catalog.
func (s *CatalogService) UpdateStock(id int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		stock := s.products[i].Stock + delta
		if stock <= 0 {
			stock = 0
			s.products[i].Status = domain.StatusSoldOut
		}
		s.products[i].Stock = stock
		return
	}
}

// Filter returns the products matching every active criterion of f,
// catalog order preserved. The catalog itself is never mutated.
func (s *CatalogService) Filter(f domain.Filter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Product
	for _, p := range s.products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Search runs the whole pipeline: filter, stable price sort when
// requested, then the clamped page slice. The total is the candidate
// count before paging. Search never fails; a malformed filter yields an
// empty result.
func (s *CatalogService) Search(
	f domain.Filter, pg domain.Page,
) (items []domain.Product, total int) {
	matched := s.Filter(f)

	switch f.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.LessThan(matched[j].Price)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.GreaterThan(matched[j].Price)
		})
	}

	return pg.Slice(matched), len(matched)
}
