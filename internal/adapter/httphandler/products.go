package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

// GET v1/products?name=&category=&status=&min_price=&max_price=&exact_price=&sort=&offset=&limit= (200 OK, 400 Bad request)
// GET v1/products/{id} (200 OK, 404 Not found)

type ProductsHandler struct {
	reader   port.ProductsReader
	editor   port.CatalogEditor
	loader   port.CatalogLoader
	gallery  port.GalleryReader
	pageSize int
}

func RegisterProducts(
	mux *http.ServeMux,
	reader port.ProductsReader,
	editor port.CatalogEditor,
	loader port.CatalogLoader,
	gallery port.GalleryReader,
	pageSize int,
) {
	h := ProductsHandler{reader, editor, loader, gallery, pageSize}
	mux.HandleFunc("GET /v1/products", h.ListProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("POST /v1/products", h.PostProduct)
	mux.HandleFunc("PUT /v1/products/{id}", h.PutProduct)
	mux.HandleFunc("POST /v1/products/{id}/stock", h.PostStock)
	mux.HandleFunc("GET /v1/products/{id}/album", h.GetAlbum)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/statuses", h.GetStatuses)
	mux.HandleFunc("POST /v1/catalog/reload", h.PostReload)
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.ListProducts"
	log := slog.With("op", op)

	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, "invalid filter params", http.StatusBadRequest)
		log.Warn("failed to parse filter", "err", err)
		return
	}

	pg, err := parsePage(r, h.pageSize)
	if err != nil {
		http.Error(w, "invalid pagination params", http.StatusBadRequest)
		log.Warn("failed to parse pagination", "err", err)
		return
	}

	items, total := h.reader.Search(f, pg)

	page := ProductsPage{
		Items:  make([]Product, 0, len(items)),
		Total:  total,
		Offset: pg.Offset,
		Limit:  pg.Limit,
	}
	for _, p := range items {
		page.Items = append(page.Items, toProductDTO(p))
	}

	writeJSON(w, page, log)
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, ok := h.reader.ProductByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, toProductDTO(p), log)
}

func (h ProductsHandler) PostProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostProduct"
	log := slog.With("op", op)

	var dto Product
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.editor.AddProduct(toDomainProduct(dto))
	w.WriteHeader(http.StatusCreated)
	log.Info("product added", "productID", dto.ID)
}

func (h ProductsHandler) PutProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutProduct"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var dto Product
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	dto.ID = id

	if _, ok := h.reader.ProductByID(id); !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.editor.UpdateProduct(toDomainProduct(dto))
	w.WriteHeader(http.StatusNoContent)
	log.Info("product updated", "productID", id)
}

func (h ProductsHandler) PostStock(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostStock"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var dto StockUpdate
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if _, ok := h.reader.ProductByID(id); !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.editor.UpdateStock(id, dto.Delta)
	w.WriteHeader(http.StatusNoContent)
	log.Info("stock updated", "productID", id, "delta", dto.Delta)
}

func (h ProductsHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetAlbum"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, ok := h.reader.ProductByID(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	var album []AlbumEntry
	for _, e := range h.gallery.Album(r.Context(), p) {
		album = append(album, AlbumEntry(e))
	}

	writeJSON(w, album, log)
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetCategories"
	writeJSON(w, h.reader.Categories(), slog.With("op", op))
}

func (h ProductsHandler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetStatuses"
	writeJSON(w, h.reader.Statuses(), slog.With("op", op))
}

func (h ProductsHandler) PostReload(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostReload"
	log := slog.With("op", op)

	if err := h.loader.Load(r.Context()); err != nil {
		http.Error(w, "failed to load catalog", http.StatusBadGateway)
		log.Error("failed to load catalog", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info("catalog reloaded")
}

func parseFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()

	f := domain.Filter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		Status:   domain.ProductStatus(q.Get("status")),
		SortBy:   domain.SortKey(q.Get("sort")),
	}

	for param, dst := range map[string]*decimal.Decimal{
		"min_price":   &f.MinPrice,
		"max_price":   &f.MaxPrice,
		"exact_price": &f.ExactPrice,
	} {
		s := q.Get(param)
		if s == "" {
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return domain.Filter{}, err
		}
		*dst = d
	}

	return f, nil
}

func parsePage(r *http.Request, defaultLimit int) (domain.Page, error) {
	q := r.URL.Query()
	pg := domain.Page{Limit: defaultLimit}

	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return domain.Page{}, err
		}
		pg.Offset = v
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return domain.Page{}, err
		}
		pg.Limit = v
	}

	return pg, nil
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, v any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func toProductDTO(p domain.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price.InexactFloat64(),
		Stock:     p.Stock,
		Status:    string(p.Status),
		MainImage: p.MainImage,
		GalleryID: p.GalleryID,
	}
}

func toDomainProduct(dto Product) domain.Product {
	return domain.Product{
		ID:        dto.ID,
		Name:      dto.Name,
		Category:  dto.Category,
		Price:     decimal.NewFromFloat(dto.Price),
		Stock:     dto.Stock,
		Status:    domain.ProductStatus(dto.Status),
		MainImage: dto.MainImage,
		GalleryID: dto.GalleryID,
	}
}
