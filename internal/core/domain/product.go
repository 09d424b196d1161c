package domain

import "github.com/shopspring/decimal"

type ProductStatus string

const (
	StatusNew      ProductStatus = "Nuevo"
	StatusLightUse ProductStatus = "Poco Uso"
	StatusUsed     ProductStatus = "Usado"
	StatusAncient  ProductStatus = "Lo usó Matusalén"
	StatusSoldOut  ProductStatus = "Agotado"
)

type Product struct {
	ID        int64
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Status    ProductStatus
	MainImage string
	GalleryID int64
}

// HasGallery reports whether the product references a remote gallery.
func (p Product) HasGallery() bool {
	return p.GalleryID != 0
}
