package imagesearch

// Log prefixes
const (
	LogPrefixImage = "agents.imagesearch.SearchFromImage"
	LogPrefixText  = "agents.imagesearch.SearchFromText"
)

// Default nearest-neighbor counts.
const (
	DefaultTextK  = 3
	DefaultImageK = 5
)

// PromptDescribeCloth is the vision-model prompt for the uploaded photo.
const PromptDescribeCloth = `Give me the description of the cloth (e.g. colour, type, design), the type of cloth (top, bottom, pants, etc), design description (e.g. laced, short-sleeved), and any other notable feature. Answer in two or three sentences.`

// PromptSummarizeHit asks for a short human-readable {image, description}
// pair for one retrieved item, wrapped in a fenced block.
const PromptSummarizeHit = `You are an intelligent parser that receives one search result from a product database.

The result contains an image URL and the product's structured attributes (brand, color, type, etc).

Extract:
1. The product image URL
2. A short, human-readable product description (2-3 lines max)

Only include attributes that matter visually, like color, type, design, material. Avoid numeric fields or IDs unless they are relevant.

Respond with a JSON object wrapped in a fenced code block, with exactly this structure:

` + "```" + `
{"image": "<image_url>", "description": "<clean, readable description of the item>"}
` + "```" + `

Here is the data:
%s`
