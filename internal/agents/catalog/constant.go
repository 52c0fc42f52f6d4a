package catalog

// Log prefixes
const (
	LogPrefixSearch = "agents.catalog.Search"
)

// DefaultLimit caps results per search.
const DefaultLimit = 5

// DescriptionMaxRunes is the card description truncation length.
const DescriptionMaxRunes = 100

// Product card block delimiters. The web frontend parses the JSON between
// them and renders product cards.
const (
	ProductCardsStart = "[PRODUCT_CARDS_START]"
	ProductCardsEnd   = "[PRODUCT_CARDS_END]"
)

// NoMatchesMessage is returned verbatim when the filter finds nothing.
const NoMatchesMessage = "I couldn't find any products matching your request. Try rephrasing, or loosening the brand or price constraints."

// PromptGenerateFilter instructs the gateway to emit only a filter object.
// The response is parsed as a constrained filter description and validated
// against the schema; it is never executed as code.
const PromptGenerateFilter = `You are a product search assistant. Convert the user's natural language product query into a JSON search filter.

### User Query:
%s

### Filterable fields (use only these):
- "title" (string): e.g. "LOL Dress for Toddler Girl Elegant Mesh Dress"
- "category" (string): e.g. "Clothing"
- "subcategory" (string): e.g. "Dresses"
- "brand" (string): e.g. "KAWELL"
- "description" (string): free-text content
- "price" (number): e.g. 9.89

### Instructions:
- String fields support only {"contains": "<text>"} (case-insensitive substring match)
- "price" supports only {"lte": <number>} and/or {"gte": <number>}
- If the query mentions product names or features, match them with "contains" on "title" and/or "description"
- Do not include any explanation, markdown, or comments. Respond with a single JSON object only.

### Output format example:
{"subcategory": {"contains": "dresses"}, "brand": {"contains": "kawell"}, "price": {"lte": 20}}

Respond only with a JSON object like the one above.`

// PromptSummarizeResults produces the introductory sentence for the card block.
const PromptSummarizeResults = `You are a helpful shopping assistant. A user searched for products and the catalog returned these results:

%s

Write one short, friendly introductory sentence (no list, no headings) presenting these results to the user. Mention how many items were found.`
