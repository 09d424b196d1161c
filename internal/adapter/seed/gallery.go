package seed

import (
	"context"
	"errors"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

var ErrNoGallerySource = errors.New("no gallery source configured")

var _ port.GallerySource = (*Galleries)(nil)

// Galleries is the gallery source used when no remote API is
// configured. Seed products carry no gallery ids, so a fetch here means
// a misconfiguration; it always fails and the caller falls back to the
// empty gallery.
type Galleries struct{}

func NewGalleries() Galleries {
	return Galleries{}
}

func (Galleries) FetchGallery(
	ctx context.Context, galleryID int64,
) (domain.Gallery, error) {
	return domain.Gallery{}, ErrNoGallerySource
}
