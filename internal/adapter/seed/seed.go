// Package seed provides the fixed catalog used when no remote catalog
// API is configured.
package seed

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

var _ port.CatalogSource = (*Catalog)(nil)

type Catalog struct{}

func NewCatalog() Catalog {
	return Catalog{}
}

// FetchProducts returns a copy of the seed list. It never fails.
func (Catalog) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ps := make([]domain.Product, len(products))
	copy(ps, products)
	return ps, nil
}

var products = []domain.Product{
	{
		ID:        1,
		Name:      "Smart TV 42\"",
		Category:  "Electrónica",
		Price:     decimal.NewFromInt(400),
		Stock:     1,
		Status:    domain.StatusLightUse,
		MainImage: "assets/images/tv.jpg",
	},
	{
		ID:        2,
		Name:      "Laptop 14\"",
		Category:  "Electrónica",
		Price:     decimal.NewFromInt(800),
		Stock:     1,
		Status:    domain.StatusUsed,
		MainImage: "assets/images/laptop.jpg",
	},
	{
		ID:        3,
		Name:      "Sofá 3 cuerpos",
		Category:  "Hogar",
		Price:     decimal.NewFromInt(300),
		Stock:     1,
		Status:    domain.StatusUsed,
		MainImage: "assets/images/sofa.jpg",
	},
	{
		ID:        4,
		Name:      "Mesa ratona",
		Category:  "Hogar",
		Price:     decimal.NewFromInt(150),
		Stock:     2,
		Status:    domain.StatusAncient,
		MainImage: "assets/images/mesa.jpg",
	},
	{
		ID:        5,
		Name:      "Bicicleta rodado 29",
		Category:  "Deportes",
		Price:     decimal.NewFromInt(250),
		Stock:     1,
		Status:    domain.StatusNew,
		MainImage: "assets/images/bici.jpg",
	},
}
