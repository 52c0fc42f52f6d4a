package model

// QueryType discriminates the query union.
type QueryType string

const (
	QueryTypeText  QueryType = "text"
	QueryTypeImage QueryType = "image"
)

// Query is one incoming request. Exactly one of Text or ImagePath is set,
// according to Type. Immutable once constructed.
type Query struct {
	Type      QueryType
	Text      string
	ImagePath string

	Context         []Turn           // Prior turns, oldest first
	User            *User            // nil for guests
	BrowsingContext *BrowsingContext // nil when the caller sent none
}

// Turn is one prior conversation turn.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// User identifies an authenticated caller.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductRef points at a previously viewed product.
type ProductRef struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// CartItem is one line of the caller's cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BrowsingContext is the shopper's recent activity, supplied by the web
// frontend to personalise answers.
type BrowsingContext struct {
	SearchHistory  []string     `json:"search_history"`
	ViewedProducts []ProductRef `json:"viewed_products"`
	CartItems      []CartItem   `json:"cart_items"`
	CartTotal      float64      `json:"cart_total"`
}
