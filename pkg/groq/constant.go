package groq

const (
	// DefaultBaseURL is the OpenAI-compatible Groq API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default text model to use
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultVisionModel is the default multimodal model for image description
	DefaultVisionModel = "meta-llama/llama-4-scout-17b-16e-instruct"
)
