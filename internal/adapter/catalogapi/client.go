// Package catalogapi fetches the catalog and its galleries from the
// remote REST API and resolves relative image references against the
// configured images base path.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
	"github.com/vitrinalabs/vitrina/pkg/retry"
)

const defaultTimeout = 10 * time.Second

var _ port.CatalogSource = (*Client)(nil)
var _ port.GallerySource = (*Client)(nil)

// A ClientConfig used for setup [Client].
//
// BaseURL is required. ImagesURL falls back to BaseURL.
// FetchAttempts below 1 means a single attempt, i.e. no retry.
type ClientConfig struct {
	BaseURL       string
	ImagesURL     string
	ApplicationID int64
	Timeout       time.Duration
	FetchAttempts int
}

type Client struct {
	http          *http.Client
	baseURL       string
	imagesURL     string
	applicationID int64
	attempts      int
}

func NewClient(config ClientConfig) *Client {
	imagesURL := config.ImagesURL
	if imagesURL == "" {
		imagesURL = config.BaseURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	attempts := config.FetchAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &Client{
		http:          &http.Client{Timeout: timeout},
		baseURL:       config.BaseURL,
		imagesURL:     imagesURL,
		applicationID: config.ApplicationID,
		attempts:      attempts,
	}
}

// FetchProducts gets the catalog and resolves main image URLs.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "catalogapi.FetchProducts"

	url := fmt.Sprintf("%s/producto?aplicacionId=%d", c.baseURL, c.applicationID)

	var body struct {
		Items []productDTO `json:"items"`
	}
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]domain.Product, 0, len(body.Items))
	for _, dto := range body.Items {
		p := dto.toDomain()
		if dto.ImagenDestacada != "" {
			p.MainImage = fmt.Sprintf("%s/productos/%d/%s",
				c.imagesURL, p.ID, dto.ImagenDestacada)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// FetchGallery gets one gallery by id and resolves its image URLs.
func (c *Client) FetchGallery(
	ctx context.Context, galleryID int64,
) (domain.Gallery, error) {
	const op = "catalogapi.FetchGallery"

	url := c.baseURL + "/galeria/" + strconv.FormatInt(galleryID, 10)

	var dto galleryDTO
	if err := c.getJSON(ctx, url, &dto); err != nil {
		return domain.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	g := domain.Gallery{
		ID:          dto.ID,
		Name:        dto.Nombre,
		Description: dto.Descripcion,
	}
	for _, img := range dto.Imagenes {
		g.Images = append(g.Images, domain.GalleryImage{
			ID:        img.ID,
			GalleryID: galleryID,
			FileName:  img.NombreImagen,
			URL: fmt.Sprintf("%s/galerias/%d/%s",
				c.imagesURL, galleryID, img.NombreImagen),
		})
	}
	return g, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	rc := retry.RetryConfig{MaxAttempts: c.attempts}

	return retry.Do(ctx, rc, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status: %s", resp.Status)
		}

		return json.NewDecoder(resp.Body).Decode(v)
	})
}

type (
	productDTO struct {
		ID              int64   `json:"id"`
		Nombre          string  `json:"nombre"`
		Categoria       string  `json:"categoria"`
		Precio          float64 `json:"precio"`
		Stock           int     `json:"stock"`
		Estado          string  `json:"estado"`
		ImagenDestacada string  `json:"imagenDestacada"`
		GaleriaID       int64   `json:"galeriaId"`
	}

	galleryDTO struct {
		ID          int64             `json:"id"`
		Nombre      string            `json:"nombre"`
		Descripcion string            `json:"descripcion"`
		Imagenes    []galleryImageDTO `json:"imagenes"`
	}

	galleryImageDTO struct {
		ID           int64  `json:"id"`
		NombreImagen string `json:"nombreImagen"`
	}
)

func (dto productDTO) toDomain() domain.Product {
	return domain.Product{
		ID:        dto.ID,
		Name:      dto.Nombre,
		Category:  dto.Categoria,
		Price:     decimal.NewFromFloat(dto.Precio),
		Stock:     dto.Stock,
		Status:    domain.ProductStatus(dto.Estado),
		MainImage: dto.ImagenDestacada,
		GalleryID: dto.GaleriaID,
	}
}
