package imagesearch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"ai-shopping-assistant/internal/agents"
	"ai-shopping-assistant/internal/product/repository"
	"ai-shopping-assistant/pkg/llmgateway"
	pkgLog "ai-shopping-assistant/pkg/log"
)

// Item is one similarity hit after summarization and enrichment. The catalog
// fields come from the index payload and are ground truth; Description is the
// model-written cosmetic text and never overwrites them.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Image       string   `json:"image"`       // display image picked for the card
	Description string   `json:"description"` // model-generated, cosmetic
	Score       float64  `json:"score"`
}

// Agent retrieves visually/semantically similar catalog items.
type Agent struct {
	gw         llmgateway.Gateway
	vectorRepo repository.VectorRepository
	l          pkgLog.Logger
}

// New creates an image similarity search agent.
func New(gw llmgateway.Gateway, vectorRepo repository.VectorRepository, l pkgLog.Logger) *Agent {
	return &Agent{
		gw:         gw,
		vectorRepo: vectorRepo,
		l:          l,
	}
}

// SearchFromImage describes the photo with the vision model, then retrieves
// similar items for the description.
func (a *Agent) SearchFromImage(ctx context.Context, imagePath string) (agents.Output, error) {
	dataURI, err := loadImageDataURI(imagePath)
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: load image: %w", LogPrefixImage, err)
	}

	description, err := a.gw.DescribeImage(ctx, PromptDescribeCloth, dataURI)
	if err != nil {
		return agents.Output{}, fmt.Errorf("%s: describe image: %w", LogPrefixImage, err)
	}
	a.l.Infof(ctx, "%s: cloth description: %q", LogPrefixImage, description)

	return a.retrieve(ctx, description, DefaultImageK)
}

// SearchFromText retrieves similar items for a text description.
func (a *Agent) SearchFromText(ctx context.Context, query string, k int) (agents.Output, error) {
	if k <= 0 {
		k = DefaultTextK
	}
	return a.retrieve(ctx, query, k)
}

// retrieve runs nearest-neighbor search and summarizes each hit. A hit whose
// summary fails to parse is dropped rather than aborting the whole search.
func (a *Agent) retrieve(ctx context.Context, query string, k int) (agents.Output, error) {
	hits, err := a.vectorRepo.SearchProducts(ctx, repository.SearchProductsOptions{
		Query: query,
		Limit: k,
	})
	if err != nil {
		return agents.Output{}, fmt.Errorf("imagesearch: vector search: %w", err)
	}

	items := make([]Item, 0, len(hits))
	for _, hit := range hits {
		item, err := a.summarizeHit(ctx, hit)
		if err != nil {
			a.l.Warnf(ctx, "imagesearch: dropping hit %s: %v", hit.Product.ID, err)
			continue
		}
		items = append(items, item)
	}

	return agents.Output{
		LLMOutput: renderItems(items),
		RawOutput: items,
	}, nil
}

// summarizeHit asks the gateway for a {image, description} pair, then
// re-applies the authoritative catalog fields on top.
func (a *Agent) summarizeHit(ctx context.Context, hit repository.SearchResult) (Item, error) {
	p := hit.Product

	meta, err := json.Marshal(p)
	if err != nil {
		return Item{}, fmt.Errorf("marshal metadata: %w", err)
	}

	resp, err := a.gw.Complete(ctx, fmt.Sprintf(PromptSummarizeHit, string(meta)))
	if err != nil {
		return Item{}, fmt.Errorf("summarize: %w", err)
	}

	summary, err := extractFencedJSON(resp)
	if err != nil {
		return Item{}, fmt.Errorf("parse summary: %w", err)
	}

	item := Item{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price,
		Images:      p.Images,
		Image:       p.Thumbnail(),
		Description: summary.Description,
		Score:       hit.Score,
	}
	if summary.Image != "" && containsURL(p.Images, summary.Image) {
		item.Image = summary.Image
	}
	return item, nil
}

type hitSummary struct {
	Image       string `json:"image"`
	Description string `json:"description"`
}

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// extractFencedJSON parses the first fenced block of the response as a
// summary object, accepting a single-element list as well.
func extractFencedJSON(text string) (hitSummary, error) {
	body := strings.TrimSpace(text)
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		body = strings.TrimSpace(m[1])
	}

	var summary hitSummary
	if err := json.Unmarshal([]byte(body), &summary); err == nil {
		return summary, nil
	}

	var list []hitSummary
	if err := json.Unmarshal([]byte(body), &list); err == nil && len(list) > 0 {
		return list[0], nil
	}

	return hitSummary{}, fmt.Errorf("no parseable JSON block in %q", text)
}

func containsURL(urls []string, url string) bool {
	for _, u := range urls {
		if u == url {
			return true
		}
	}
	return false
}

// renderItems builds the natural-language form of the hit list.
func renderItems(items []Item) string {
	if len(items) == 0 {
		return "I couldn't find any similar items in the catalog."
	}

	var b strings.Builder
	b.WriteString("Here are the closest matches I found:\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. **%s** by %s ($%.2f) — %s\n", i+1, item.Title, item.Brand, item.Price, item.Description)
	}
	return strings.TrimSpace(b.String())
}

// loadImageDataURI reads the buffered upload and encodes it as a data URI for
// the vision API.
func loadImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("not an image: detected %s", mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
