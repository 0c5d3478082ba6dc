package openai

import "github.com/irl/ask/internal/llm/common"

// ChatRequest represents the request payload for the chat completions API
type ChatRequest struct {
	Model       string           `json:"model"`
	Messages    []common.Message `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
}
