package model

// Product is a catalog item. IDs are normalized to string form regardless of
// how the backing store keys them.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}

// Thumbnail returns the first product image, or the placeholder when the
// product carries none.
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ProductImagePlaceholder
}

// ProductImagePlaceholder is shown when a product has no images.
const ProductImagePlaceholder = "/images/product-placeholder.png"
