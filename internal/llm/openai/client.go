// Package openai provides a completion client for the OpenAI chat completions API.
//
// API Reference: https://platform.openai.com/docs/api-reference/chat/create
// Authentication: providers.openai.api_key or OPENAI_API_KEY environment variable
//
// Example usage:
//
//	client := openai.NewClient(common.StaticKey(apiKey), nil, openai.WithTemperature(0.7))
//	text, err := client.GetCompletion("hello")
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/irl/ask/internal/config"
	"github.com/irl/ask/internal/llm/common"
)

// NoResponseText is returned, as a success, when the API sends zero choices
const NoResponseText = "No response from API"

// Client sends one prompt per call to the chat completions endpoint
type Client struct {
	*common.BaseClient
	options *GenerateOptions
}

var _ common.Completer = (*Client)(nil)

// NewClient creates a client; clientOpts tune the connection, opts the request policy
func NewClient(keys common.KeySource, clientOpts []common.ClientOption, opts ...GenerateOption) *Client {
	base := append([]common.ClientOption{common.WithKeyName(config.EnvAPIKey)}, clientOpts...)
	return &Client{
		BaseClient: common.NewBaseClient(keys, config.DefaultBaseURL, base...),
		options:    NewGenerateOptions(opts...),
	}
}

// Options returns the request policy of the client
func (c *Client) Options() GenerateOptions {
	return *c.options
}

// BuildRequest creates the request payload: the system preamble followed by the prompt
func (c *Client) BuildRequest(prompt string) *ChatRequest {
	return &ChatRequest{
		Model: c.options.Model,
		Messages: []common.Message{
			{Role: common.RoleSystem, Content: c.options.SystemPrompt},
			{Role: common.RoleUser, Content: prompt},
		},
		MaxTokens:   c.options.MaxTokens,
		Temperature: c.options.Temperature,
	}
}

// ParseResponse extracts the first choice's content from a response body
func (c *Client) ParseResponse(body []byte) (string, *common.Usage, error) {
	var response common.ChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		common.LogJSONUnmarshalError(c.Logger, err, string(body))
		return "", nil, &common.DeserializationError{Err: err}
	}

	if response.Choices == nil {
		return "", nil, &common.DeserializationError{Err: errors.New(`missing "choices" field`)}
	}
	for i, choice := range response.Choices {
		if choice.Message.Content == nil {
			return "", nil, &common.DeserializationError{Err: fmt.Errorf(`choice %d has no "message.content" field`, i)}
		}
	}

	if response.Usage != nil {
		common.LogTokenUsage(c.Logger, response.ID, *response.Usage)
	}

	if len(response.Choices) == 0 {
		c.Logger.Warn("Response contained no choices")
		return NoResponseText, response.Usage, nil
	}

	return *response.Choices[0].Message.Content, response.Usage, nil
}

// HandleError converts a non-2xx response into an APIError
func (c *Client) HandleError(statusCode int, body []byte) error {
	apiErr := &common.APIError{StatusCode: statusCode}

	var errResp common.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Type = errResp.Error.Type
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	}

	return apiErr
}

// Complete sends prompt and returns the completion text
// the credential is resolved first; when it is missing nothing is sent
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	apiKey, err := c.ResolveAPIKey()
	if err != nil {
		return "", err
	}

	request := c.BuildRequest(prompt)
	common.LogAPIRequest(c.Logger, request.Model, request.Messages, request.MaxTokens, request.Temperature)

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal openai request: %w", err)
	}

	response, body, err := c.executeRequest(ctx, apiKey, jsonData)
	if err != nil {
		return "", err
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", c.HandleError(response.StatusCode, body)
	}

	content, usage, err := c.ParseResponse(body)
	if err != nil {
		return "", err
	}

	c.logSuccess(content, usage)
	return content, nil
}

// GetCompletion is the blocking form of Complete; each call gets its own
// execution scope which is discarded before returning
func (c *Client) GetCompletion(prompt string) (string, error) {
	return common.RunBlocking(context.Background(), func(ctx context.Context) (string, error) {
		return c.Complete(ctx, prompt)
	})
}

// executeRequest performs the single POST and reads the whole body
func (c *Client) executeRequest(ctx context.Context, apiKey string, jsonData []byte) (*http.Response, []byte, error) {
	url := common.BuildChatCompletionsURL(c.BaseURL)
	common.LogRequestExecution(c.Logger, url, c.Timeout)

	req, err := common.CreateJSONRequest(ctx, url, jsonData)
	if err != nil {
		return nil, nil, err
	}

	httpClient, release := c.NewHTTPClient(apiKey)
	defer release()

	response, err := httpClient.Do(req)
	if err != nil {
		common.LogRequestFailure(c.Logger, err)
		return nil, nil, &common.TransportError{URL: url, Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		common.LogRequestFailure(c.Logger, err)
		return nil, nil, &common.TransportError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	common.LogHTTPResponse(c.Logger, response.StatusCode, len(body))
	common.LogRawResponse(c.Logger, string(body), response.StatusCode)

	return response, body, nil
}

// logSuccess logs successful completion
func (c *Client) logSuccess(content string, usage *common.Usage) {
	if usage == nil {
		c.Logger.Debug("Response carried no usage data")
	}
	common.LogRequestCompletion(c.Logger, len(content))
}
