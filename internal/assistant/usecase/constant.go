package usecase

import "time"

// Log prefixes
const (
	LogPrefixRoute     = "internal.assistant.Route"
	LogPrefixClassify  = "internal.assistant.classify"
	LogPrefixFanOut    = "internal.assistant.runAgents"
	LogPrefixAggregate = "internal.assistant.aggregate"
	LogPrefixSimple    = "internal.assistant.answerSimple"
	LogPrefixImage     = "internal.assistant.SearchByImage"
	LogPrefixText      = "internal.assistant.SearchByText"
)

// DefaultAdapterTimeout bounds each tool-agent adapter call during fan-out.
const DefaultAdapterTimeout = 20 * time.Second

// Supervisor prompts
const (
	PromptDecision = `You are a decision-making assistant. Your job is to classify a user query as either:

- 'simplellm': the query can be handled by a plain language model (general knowledge, reasoning, small talk).
- 'toolagent': the query requires broader capabilities like web search, user history access, or a structured product lookup (brand, size, price, category, description, features).

Rules:
- If the query is about general reasoning or conversation, set "simplellm": true.
- If the query needs product data, user data, recommendations, or web access, set "toolagent": true.
- If the query is unclear or broad, default to "toolagent": true.

Respond only with a JSON object:
- Example for general purpose:  {"simplellm": true, "toolagent": false}
- Example for product search:   {"simplellm": false, "toolagent": true}

Now classify the following query:

User Query: "%s"`

	PromptCompose = `You are a helpful assistant. You are given the outputs from multiple agents:

%s

Each section names the agent that produced it:
- "Search Agent Output": result from an external or semantic web search
- "History Agent Output": result based on the user's past interactions
- "Database Agent Output": result from the product catalog lookup

Your task is to generate a section-wise summary in natural language that clearly and cleanly explains each part. For each section:
- Use a clear heading.
- If the agent did not return any useful information, say so.
- Otherwise, summarize or rewrite the response into a concise and readable format.

Make the response structured, easy to read, and human-friendly.

Generate the final response below:`

	PromptSimpleAnswer = `You are a friendly shopping assistant for an online clothing store.
%sAnswer the customer's message below in a concise, helpful way. Do not invent products or prices.

Customer message: "%s"`
)

// Compose section headers, keyed to the adapter names.
const (
	SectionSearch   = "Search Agent Output"
	SectionHistory  = "History Agent Output"
	SectionDatabase = "Database Agent Output"

	// NoUsefulInfo is substituted for an adapter that failed or did not run.
	NoUsefulInfo = "The agent did not return any useful information."
)

// Fixed user-facing messages for degraded paths.
const (
	MsgRateLimited = "I'm handling a lot of requests right now. Please try again in a moment."
	MsgNoFindings  = "I couldn't find anything useful for that request. Could you try rephrasing it?"
	MsgGuestNudge  = "P.S. Create an account to save your cart and get personalized recommendations."
)

// Greeting tokens matched case-insensitively against the whole query.
var greetingTokens = []string{
	"hello",
	"hi",
	"hey",
	"good morning",
	"good afternoon",
	"good evening",
}

// Context digest bounds for prompts.
const (
	maxDigestTurns       = 3
	maxDigestSearchTerms = 3
	maxDigestCartItems   = 3
)
