package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"ai-shopping-assistant/internal/model"
)

// Card is one entry of the product-card block.
type Card struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Link        string  `json:"link"`
}

// newCard truncates the description and picks a thumbnail for display. The
// raw output keeps the untruncated product.
func newCard(p model.Product) Card {
	return Card{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: truncateRunes(p.Description, DescriptionMaxRunes),
		Thumbnail:   p.Thumbnail(),
		Link:        "/products/" + p.ID,
	}
}

// formatCardBlock renders the intro sentence plus the delimited card block
// the presentation layer parses.
func formatCardBlock(intro string, products []model.Product) (string, error) {
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = newCard(p)
	}

	payload, err := json.Marshal(cards)
	if err != nil {
		return "", fmt.Errorf("marshal product cards: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(intro))
	b.WriteString("\n\n")
	b.WriteString(ProductCardsStart)
	b.WriteString(string(payload))
	b.WriteString(ProductCardsEnd)
	return b.String(), nil
}

// truncateRunes shortens text to maxLen runes with an ellipsis, safe for
// multi-byte characters.
func truncateRunes(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
