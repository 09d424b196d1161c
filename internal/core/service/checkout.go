package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

var ErrEmptyCart = errors.New("cart is empty")

var _ port.CheckoutHandler = (*CheckoutService)(nil)

const messageGreeting = "Hola, estoy interesad@ en estos productos:"

// A CheckoutService turns the cart into a messaging handoff: a
// human-readable order summary and a deep link for the configured
// WhatsApp number. It produces the message; delivery and confirmation
// belong to the external channel.
type CheckoutService struct {
	cart   port.CartManager
	number string
}

func NewCheckoutService(cart port.CartManager, whatsAppNumber string) *CheckoutService {
	return &CheckoutService{cart: cart, number: whatsAppNumber}
}

// Checkout freezes the current cart into an Order with a fresh
// reference. The cart is left intact; clearing it is the caller's call.
func (s *CheckoutService) Checkout(ctx context.Context) (domain.Order, error) {
	const op = "CheckoutService.Checkout"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	total := s.cart.Total()
	msg := OrderMessage(items, total)
	order := domain.Order{
		Ref:     uuid.NewString(),
		Items:   items,
		Total:   total,
		Message: msg,
		Link:    s.Link(msg),
	}

	slog.Info("order handed off", "op", op,
		"ref", order.Ref, "nItems", len(items), "total", total)
	return order, nil
}

// OrderMessage formats the order summary: a greeting, one line per item
// with quantity, unit price and line total, then the grand total.
func OrderMessage(items []domain.CartItem, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString(messageGreeting)
	b.WriteString("\n\n")

	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s - %d x %s = %s",
			it.Product.Name, it.Quantity, it.Product.Price, it.LineTotal())
	}

	fmt.Fprintf(&b, "\n\nTotal: %s", total)
	return b.String()
}

// Link builds the wa.me deep link with the message query-escaped.
func (s *CheckoutService) Link(message string) string {
	return "https://wa.me/" + s.number + "?text=" + url.QueryEscape(message)
}
