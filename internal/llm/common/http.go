package common

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// CreateJSONRequest creates a JSON POST request; authorization comes from the client transport
func CreateJSONRequest(ctx context.Context, url string, jsonData []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// BuildChatCompletionsURL appends the standard endpoint path to baseURL
func BuildChatCompletionsURL(baseURL string) string {
	return fmt.Sprintf("%s/chat/completions", strings.TrimSuffix(baseURL, "/"))
}
