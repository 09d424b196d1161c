package port

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vitrinalabs/vitrina/internal/core/domain"
)

// Outbound ports: where the catalog data comes from.

type CatalogSource interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type GallerySource interface {
	FetchGallery(ctx context.Context, galleryID int64) (domain.Gallery, error)
}

// Inbound ports: what the presentation layer calls.

type ProductsReader interface {
	Products() []domain.Product
	ProductByID(id int64) (domain.Product, bool)
	Categories() []string
	Statuses() []string
	Search(domain.Filter, domain.Page) (items []domain.Product, total int)
	Loading() bool
	Err() error
}

type CatalogLoader interface {
	Load(context.Context) error
}

type CatalogEditor interface {
	AddProduct(domain.Product)
	UpdateProduct(domain.Product)
	UpdateStock(id int64, delta int)
}

type GalleryReader interface {
	Gallery(ctx context.Context, galleryID int64) domain.Gallery
	Images(ctx context.Context, galleryID int64) []domain.GalleryImage
	Album(ctx context.Context, p domain.Product) []domain.AlbumEntry
}

type CartManager interface {
	Add(domain.Product)
	Remove(productID int64)
	Clear()
	Items() []domain.CartItem
	Total() decimal.Decimal
	Count() int
}

type CheckoutHandler interface {
	Checkout(context.Context) (domain.Order, error)
}
