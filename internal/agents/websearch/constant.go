package websearch

// Log prefixes
const (
	LogPrefixSearch = "agents.websearch.GetSearchResults"
)

// Markers the gateway is told to prefix its answers with. Only the text after
// the marker is kept.
const (
	QueryMarker   = "Search query:"
	SummaryMarker = "Summarized response:"
)

// Prompts
const (
	PromptGenerateQuery = `You are a search query generation assistant. Your task is to generate a short and precise web search query to learn more about the following user query:

Query: %s

Generate a web search query that would help a search engine find more about this item from an online store's pages.
Use the item name, description, or any other useful info.

Output format:
Search query: <query here>`

	PromptSummarize = `You are a search result summarizer. Your task is to generate a short, point-wise and descriptive summary of a web search result so the user can read the retrieved results easily:

Data: %s

Generate the response in markdown format.
Show all the items separately in an ordered list.
Use the item name, description, or any other useful info.
Only return the summarized response.

Output format:
Summarized response: <summary here>`
)
