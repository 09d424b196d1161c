package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/vitrinalabs/vitrina/internal/core/domain"
	"github.com/vitrinalabs/vitrina/internal/core/port"
)

var _ port.GalleryReader = (*GalleryService)(nil)

// A GalleryService caches fetched galleries for the session.
// An entry is written at most once per gallery id; fetch failures are
// not cached, so a later call may retry. Concurrent requests for the
// same uncached id collapse into a single fetch.
type GalleryService struct {
	mu     sync.RWMutex
	source port.GallerySource
	cache  map[int64]domain.Gallery
	group  singleflight.Group
}

func NewGalleryService(source port.GallerySource) *GalleryService {
	return &GalleryService{
		source: source,
		cache:  make(map[int64]domain.Gallery),
	}
}

// Gallery returns the cached gallery, fetching it on a miss.
// A failed fetch yields the empty gallery and is only logged: the main
// product image can still display without its gallery.
func (s *GalleryService) Gallery(
	ctx context.Context, galleryID int64,
) domain.Gallery {
	const op = "GalleryService.Gallery"
	log := slog.With("op", op, "galleryID", galleryID)

	s.mu.RLock()
	g, ok := s.cache[galleryID]
	s.mu.RUnlock()
	if ok {
		return g
	}

	key := strconv.FormatInt(galleryID, 10)
	v, err, _ := s.group.Do(key, func() (any, error) {
		// concurrent waiters share this flight; the fetch must not die
		// with whichever caller happened to start it
		fetchCtx := context.WithoutCancel(ctx)
		g, err := s.source.FetchGallery(fetchCtx, galleryID)
		if err != nil {
			return domain.Gallery{}, err
		}
		s.mu.Lock()
		if cached, ok := s.cache[galleryID]; ok {
			g = cached
		} else {
			s.cache[galleryID] = g
		}
		s.mu.Unlock()
		return g, nil
	})
	if err != nil {
		log.Error("failed to fetch gallery", "err", err)
		return domain.EmptyGallery("")
	}

	return v.(domain.Gallery)
}

// Images returns the gallery's ordered image list.
func (s *GalleryService) Images(
	ctx context.Context, galleryID int64,
) []domain.GalleryImage {
	return s.Gallery(ctx, galleryID).Images
}

// Album builds the image-viewer album for a product: the main image
// first, then the gallery images, with placeholders for missing URLs.
// Products without a gallery get a one-slide album.
func (s *GalleryService) Album(
	ctx context.Context, p domain.Product,
) []domain.AlbumEntry {
	album := []domain.AlbumEntry{mainAlbumEntry(p)}

	if !p.HasGallery() {
		return album
	}

	for _, img := range s.Images(ctx, p.GalleryID) {
		src, thumb := img.URL, img.URL
		if src == "" {
			src = domain.PlaceholderImage
			thumb = domain.PlaceholderThumbImage
		}
		album = append(album, domain.AlbumEntry{
			Src:     src,
			Caption: p.Name,
			Thumb:   thumb,
		})
	}
	return album
}

func mainAlbumEntry(p domain.Product) domain.AlbumEntry {
	src, thumb := p.MainImage, p.MainImage
	if src == "" {
		src = domain.PlaceholderImage
		thumb = domain.PlaceholderThumbImage
	}
	return domain.AlbumEntry{Src: src, Caption: p.Name, Thumb: thumb}
}
