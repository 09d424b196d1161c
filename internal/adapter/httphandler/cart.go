package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vitrinalabs/vitrina/internal/core/port"
	"github.com/vitrinalabs/vitrina/internal/core/service"
)

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" int} (204 No content, 404 Not found)
// DELETE v1/cart/items/{id} (204 No content)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	cart    port.CartManager
	catalog port.ProductsReader
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartManager, catalog port.ProductsReader,
) {
	h := CartHandler{cart, catalog}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	cart := Cart{
		Items: []CartItem{},
		Total: h.cart.Total().InexactFloat64(),
		Count: h.cart.Count(),
	}
	for _, it := range h.cart.Items() {
		cart.Items = append(cart.Items, CartItem{
			Product:   toProductDTO(it.Product),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal().InexactFloat64(),
		})
	}

	writeJSON(w, cart, log)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var dto AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	p, ok := h.catalog.ProductByID(dto.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.cart.Add(p)
	w.WriteHeader(http.StatusNoContent)
	log.Info("product added to cart", "productID", p.ID)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.cart.Remove(id)
	w.WriteHeader(http.StatusNoContent)
	log.Info("cart item removed", "productID", id)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"

	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
	slog.Info("cart cleared", "op", op)
}

// POST v1/checkout (200 OK, 409 Conflict on empty cart)

type CheckoutHandler struct {
	checkout port.CheckoutHandler
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutHandler) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	order, err := h.checkout.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		http.Error(w, "failed to checkout", http.StatusInternalServerError)
		log.Error("failed to checkout", "err", err)
		return
	}

	writeJSON(w, Order{
		Ref:     order.Ref,
		Total:   order.Total.InexactFloat64(),
		Message: order.Message,
		Link:    order.Link,
	}, log)
}
