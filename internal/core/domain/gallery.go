package domain

const (
	PlaceholderImage      = "assets/images/placeholder.jpg"
	PlaceholderThumbImage = "assets/images/placeholder-thumb.jpg"
)

type (
	Gallery struct {
		ID          int64
		Name        string
		Description string
		Images      []GalleryImage
	}

	GalleryImage struct {
		ID        int64
		GalleryID int64
		FileName  string
		URL       string
	}
)

// EmptyGallery is the fallback for products without a gallery or for
// failed gallery fetches. It is never cached.
func EmptyGallery(productName string) Gallery {
	name := "Galería vacía"
	if productName != "" {
		name = "Galería de " + productName
	}
	return Gallery{Name: name}
}

// An AlbumEntry is one slide of the image viewer.
type AlbumEntry struct {
	Src     string
	Caption string
	Thumb   string
}
