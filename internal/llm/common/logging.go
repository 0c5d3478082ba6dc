package common

import (
	"log/slog"
	"time"
)

// LogAPIRequest logs the request policy about to be sent
func LogAPIRequest(logger *slog.Logger, modelName string, messages []Message, maxTokens int, temperature float64) {
	if logger == nil {
		return
	}

	roles := make([]string, 0, len(messages))
	for _, msg := range messages {
		roles = append(roles, msg.Role)
	}

	logger.Debug("Sending request to completions API",
		"model", modelName,
		"message_count", len(messages),
		"roles", roles,
		"max_tokens", maxTokens,
		"temperature", temperature)
}

// LogHTTPResponse logs basic HTTP response information
func LogHTTPResponse(logger *slog.Logger, statusCode int, bodyLength int) {
	if logger == nil {
		return
	}
	logger.Debug("Received API response",
		"status_code", statusCode,
		"body_length", bodyLength)
}

// LogRawResponse logs the raw API response body for debugging
func LogRawResponse(logger *slog.Logger, body string, statusCode int) {
	if logger == nil {
		return
	}
	logger.Debug("Raw API response",
		"body", body,
		"status_code", statusCode)
}

// LogTokenUsage logs token consumption from a standard Usage struct
func LogTokenUsage(logger *slog.Logger, responseID string, usage Usage) {
	if logger == nil {
		return
	}
	logger.Debug("Parsed API response",
		"response_id", responseID,
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens)
}

// LogRequestCompletion logs successful request completion
func LogRequestCompletion(logger *slog.Logger, contentLength int) {
	if logger == nil {
		return
	}
	logger.Debug("API request completed successfully",
		"response_length", contentLength)
}

// LogRequestExecution logs request execution details
func LogRequestExecution(logger *slog.Logger, url string, timeout time.Duration) {
	if logger == nil {
		return
	}
	logger.Debug("Executing API request",
		"url", url,
		"timeout", timeout)
}

// LogRequestFailure logs transport failures
func LogRequestFailure(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("API request failed",
		"error", err)
}

// LogJSONUnmarshalError logs JSON parsing errors with context
func LogJSONUnmarshalError(logger *slog.Logger, err error, responseBody string) {
	if logger == nil {
		return
	}
	logger.Error("Failed to unmarshal JSON response",
		"error", err,
		"response_body", responseBody)
}
