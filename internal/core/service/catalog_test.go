package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/service"
)

type stubCatalogSource struct {
	fetch func(context.Context) ([]domain.Product, error)
}

func (s *stubCatalogSource) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	return s.fetch(ctx)
}

func fixedSource(ps []domain.Product) *stubCatalogSource {
	return &stubCatalogSource{
		fetch: func(context.Context) ([]domain.Product, error) {
			return ps, nil
		},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Smart TV", Category: "Electrónica",
			Price: decimal.NewFromInt(400), Stock: 1, Status: domain.StatusLightUse},
		{ID: 2, Name: "Laptop", Category: "Electrónica",
			Price: decimal.NewFromInt(800), Stock: 1, Status: domain.StatusUsed},
		{ID: 3, Name: "Sofá", Category: "Hogar",
			Price: decimal.NewFromInt(300), Stock: 1, Status: domain.StatusUsed},
		{ID: 4, Name: "Mesa", Category: "Hogar",
			Price: decimal.NewFromInt(150), Stock: 2, Status: domain.StatusAncient},
		{ID: 5, Name: "Bicicleta", Category: "Deportes",
			Price: decimal.NewFromInt(250), Stock: 1, Status: domain.StatusNew},
	}
}

func loadedCatalog(t *testing.T) *service.CatalogService {
	t.Helper()
	s := service.NewCatalogService(fixedSource(seedProducts()))
	require.NoError(t, s.Load(t.Context()))
	return s
}

func TestCatalogLoad(t *testing.T) {
	t.Run("ReplacesListWholesale", func(t *testing.T) {
		src := fixedSource(seedProducts())
		s := service.NewCatalogService(src)

		require.NoError(t, s.Load(t.Context()))
		assert.Len(t, s.Products(), 5)
		assert.NoError(t, s.Err())
		assert.False(t, s.Loading())

		src.fetch = func(context.Context) ([]domain.Product, error) {
			return seedProducts()[:2], nil
		}
		require.NoError(t, s.Load(t.Context()))
		assert.Len(t, s.Products(), 2)
	})

	t.Run("FailureKeepsListAndSetsError", func(t *testing.T) {
		src := fixedSource(seedProducts())
		s := service.NewCatalogService(src)
		require.NoError(t, s.Load(t.Context()))

		src.fetch = func(context.Context) ([]domain.Product, error) {
			return nil, errors.New("boom")
		}
		require.Error(t, s.Load(t.Context()))

		assert.Len(t, s.Products(), 5)
		require.Error(t, s.Err())
		assert.Contains(t, s.Err().Error(), service.LoadErrMsg)
	})

	t.Run("FirstFailureLeavesEmptyList", func(t *testing.T) {
		s := service.NewCatalogService(&stubCatalogSource{
			fetch: func(context.Context) ([]domain.Product, error) {
				return nil, errors.New("boom")
			},
		})
		require.Error(t, s.Load(t.Context()))
		assert.Empty(t, s.Products())
	})

	t.Run("SuccessClearsPreviousError", func(t *testing.T) {
		src := &stubCatalogSource{
			fetch: func(context.Context) ([]domain.Product, error) {
				return nil, errors.New("boom")
			},
		}
		s := service.NewCatalogService(src)
		require.Error(t, s.Load(t.Context()))

		src.fetch = func(context.Context) ([]domain.Product, error) {
			return seedProducts(), nil
		}
		require.NoError(t, s.Load(t.Context()))
		assert.NoError(t, s.Err())
	})

	t.Run("SupersededLoadIsDiscarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})

		stale := []domain.Product{{ID: 99, Name: "stale"}}
		src := &stubCatalogSource{
			fetch: func(context.Context) ([]domain.Product, error) {
				close(started)
				<-release
				return stale, nil
			},
		}
		s := service.NewCatalogService(src)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = s.Load(context.Background())
		}()

		<-started
		src.fetch = func(context.Context) ([]domain.Product, error) {
			return seedProducts(), nil
		}
		require.NoError(t, s.Load(t.Context()))

		close(release)
		<-done

		ps := s.Products()
		require.Len(t, ps, 5)
		assert.NotEqual(t, "stale", ps[0].Name)
	})
}

func TestCatalogDerived(t *testing.T) {
	s := loadedCatalog(t)

	t.Run("CategoriesFirstAppearanceOrder", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Electrónica", "Hogar", "Deportes"}, s.Categories())
	})

	t.Run("StatusesFirstAppearanceOrder", func(t *testing.T) {
		assert.Equal(t, []string{
			string(domain.StatusLightUse),
			string(domain.StatusUsed),
			string(domain.StatusAncient),
			string(domain.StatusNew),
		}, s.Statuses())
	})

	t.Run("ProductByID", func(t *testing.T) {
		p, ok := s.ProductByID(3)
		require.True(t, ok)
		assert.Equal(t, "Sofá", p.Name)

		_, ok = s.ProductByID(42)
		assert.False(t, ok)
	})
}

func TestCatalogEdit(t *testing.T) {
	t.Run("AddProduct", func(t *testing.T) {
		s := loadedCatalog(t)
		s.AddProduct(domain.Product{ID: 6, Name: "Silla", Category: "Hogar"})
		assert.Len(t, s.Products(), 6)
	})

	t.Run("UpdateProductReplacesByID", func(t *testing.T) {
		s := loadedCatalog(t)
		s.UpdateProduct(domain.Product{
			ID: 1, Name: "Smart TV 50\"", Category: "Electrónica",
			Price: decimal.NewFromInt(450),
		})

		p, ok := s.ProductByID(1)
		require.True(t, ok)
		assert.Equal(t, "Smart TV 50\"", p.Name)
		assert.Len(t, s.Products(), 5)
	})

	t.Run("UpdateUnknownProductIsNoop", func(t *testing.T) {
		s := loadedCatalog(t)
		s.UpdateProduct(domain.Product{ID: 42, Name: "ghost"})
		assert.Len(t, s.Products(), 5)
		_, ok := s.ProductByID(42)
		assert.False(t, ok)
	})

	t.Run("StockDecrement", func(t *testing.T) {
		s := loadedCatalog(t)
		s.UpdateStock(4, -1)

		p, _ := s.ProductByID(4)
		assert.Equal(t, 1, p.Stock)
		assert.Equal(t, domain.StatusAncient, p.Status)
	})

	t.Run("StockClampsAtZeroAndMarksSoldOut", func(t *testing.T) {
		s := loadedCatalog(t)
		s.UpdateStock(1, -5)

		p, _ := s.ProductByID(1)
		assert.Equal(t, 0, p.Stock)
		assert.Equal(t, domain.StatusSoldOut, p.Status)
	})

	t.Run("StockUnknownProductIsNoop", func(t *testing.T) {
		s := loadedCatalog(t)
		s.UpdateStock(42, -1)
		assert.Len(t, s.Products(), 5)
	})
}

func TestCatalogSearch(t *testing.T) {
	s := loadedCatalog(t)

	t.Run("FilterReturnsMatchingSubset", func(t *testing.T) {
		f := domain.Filter{Category: "Hogar"}
		got := s.Filter(f)

		require.Len(t, got, 2)
		for _, p := range got {
			assert.True(t, f.Matches(p))
		}
	})

	t.Run("SortPriceAscending", func(t *testing.T) {
		items, total := s.Search(
			domain.Filter{SortBy: domain.SortPriceAsc},
			domain.Page{Offset: 0, Limit: 10},
		)

		require.Equal(t, 5, total)
		for i := 1; i < len(items); i++ {
			assert.False(t,
				items[i].Price.LessThan(items[i-1].Price),
				"items must be in ascending price order")
		}
	})

	t.Run("SortPriceDescending", func(t *testing.T) {
		items, _ := s.Search(
			domain.Filter{SortBy: domain.SortPriceDesc},
			domain.Page{Offset: 0, Limit: 10},
		)

		require.Len(t, items, 5)
		assert.Equal(t, "Laptop", items[0].Name)
		assert.Equal(t, "Mesa", items[4].Name)
	})

	t.Run("SortIsStableOnEqualPrices", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "first", Price: decimal.NewFromInt(100)},
			{ID: 2, Name: "second", Price: decimal.NewFromInt(100)},
			{ID: 3, Name: "cheap", Price: decimal.NewFromInt(50)},
			{ID: 4, Name: "third", Price: decimal.NewFromInt(100)},
		}
		svc := service.NewCatalogService(fixedSource(ps))
		require.NoError(t, svc.Load(t.Context()))

		items, _ := svc.Search(
			domain.Filter{SortBy: domain.SortPriceAsc},
			domain.Page{Offset: 0, Limit: 10},
		)

		require.Len(t, items, 4)
		assert.Equal(t, "cheap", items[0].Name)
		assert.Equal(t, "first", items[1].Name)
		assert.Equal(t, "second", items[2].Name)
		assert.Equal(t, "third", items[3].Name)
	})

	t.Run("UnsortedKeepsStoreOrder", func(t *testing.T) {
		items, _ := s.Search(domain.Filter{}, domain.Page{Offset: 0, Limit: 10})
		require.Len(t, items, 5)
		assert.Equal(t, "Smart TV", items[0].Name)
		assert.Equal(t, "Bicicleta", items[4].Name)
	})

	t.Run("PageNeverExceedsLimit", func(t *testing.T) {
		items, total := s.Search(domain.Filter{}, domain.Page{Offset: 0, Limit: 2})
		assert.Len(t, items, 2)
		assert.Equal(t, 5, total)
	})

	t.Run("OffsetBeyondEndYieldsEmptyPage", func(t *testing.T) {
		items, total := s.Search(domain.Filter{}, domain.Page{Offset: 10, Limit: 2})
		assert.Empty(t, items)
		assert.Equal(t, 5, total)
	})

	t.Run("ConcatenatedPagesRebuildSequence", func(t *testing.T) {
		f := domain.Filter{SortBy: domain.SortPriceAsc}

		full, total := s.Search(f, domain.Page{Offset: 0, Limit: 100})
		require.Equal(t, 5, total)

		var rebuilt []domain.Product
		for offset := 0; offset < total; offset += 2 {
			page, _ := s.Search(f, domain.Page{Offset: offset, Limit: 2})
			rebuilt = append(rebuilt, page...)
		}
		assert.Equal(t, full, rebuilt)
	})

	t.Run("MalformedRangeYieldsEmptyResult", func(t *testing.T) {
		items, total := s.Search(domain.Filter{
			MinPrice: decimal.NewFromInt(500),
			MaxPrice: decimal.NewFromInt(100),
		}, domain.Page{Offset: 0, Limit: 10})

		assert.Empty(t, items)
		assert.Zero(t, total)
	})

	t.Run("CategoryAndPriceRangeScenario", func(t *testing.T) {
		items, total := s.Search(domain.Filter{
			Category: "Electrónica",
			MinPrice: decimal.NewFromInt(0),
			MaxPrice: decimal.NewFromInt(500),
		}, domain.Page{Offset: 0, Limit: 8})

		require.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Smart TV", items[0].Name)
		assert.True(t, items[0].Price.Equal(decimal.NewFromInt(400)))
	})
}
