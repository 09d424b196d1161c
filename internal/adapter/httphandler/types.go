package httphandler

type (
	Product struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Category  string  `json:"category"`
		Price     float64 `json:"price"`
		Stock     int     `json:"stock"`
		Status    string  `json:"status"`
		MainImage string  `json:"main_image"`
		GalleryID int64   `json:"gallery_id,omitempty"`
	}

	ProductsPage struct {
		Items  []Product `json:"items"`
		Total  int       `json:"total"`
		Offset int       `json:"offset"`
		Limit  int       `json:"limit"`
	}

	AlbumEntry struct {
		Src     string `json:"src"`
		Caption string `json:"caption"`
		Thumb   string `json:"thumb"`
	}
)

type (
	CartItem struct {
		Product   Product `json:"product"`
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"line_total"`
	}

	Cart struct {
		Items []CartItem `json:"items"`
		Total float64    `json:"total"`
		Count int        `json:"count"`
	}

	AddCartItem struct {
		ProductID int64 `json:"product_id"`
	}

	Order struct {
		Ref     string  `json:"ref"`
		Total   float64 `json:"total"`
		Message string  `json:"message"`
		Link    string  `json:"link"`
	}
)

type StockUpdate struct {
	Delta int `json:"delta"`
}
