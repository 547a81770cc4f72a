package dto

// Message is a single chat message in an OpenAI-style request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAPIReq is the request payload for the OpenAI chat completions API.
type OpenAPIReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Choice is one completion choice in the response.
type Choice struct {
	Message Message `json:"message"`
}

// Usage reports token consumption for a completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// OpenAPIRes is the response from the OpenAI chat completions API.
type OpenAPIRes struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}
