package mock

import (
	"context"
	"sync"

	"github.com/irl/ask/internal/llm/common"
)

// DefaultResponse is returned when no Response is configured
const DefaultResponse = "Mock LLM response"

// Client implements common.Completer without touching the network
type Client struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

var _ common.Completer = (*Client)(nil)

// New creates a mock client answering with DefaultResponse
func New() *Client {
	return &Client{}
}

// Complete records the prompt and returns the canned response or error
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	if c.Err != nil {
		return "", c.Err
	}
	if c.Response == "" {
		return DefaultResponse, nil
	}
	return c.Response, nil
}

// Prompts returns the prompts received so far
func (c *Client) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
