package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	askIO "github.com/irl/ask/internal/io"
	"github.com/irl/ask/internal/llm/common"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "success",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "missing credential",
			err:      &common.ConfigurationError{Key: "OPENAI_API_KEY", Err: common.ErrMissingAPIKey},
			expected: ExitConfiguration,
		},
		{
			name:     "transport failure",
			err:      &common.TransportError{URL: "http://localhost", Err: errors.New("connection refused")},
			expected: ExitTransport,
		},
		{
			name:     "non-2xx status",
			err:      &common.APIError{StatusCode: 401, Message: "Incorrect API key provided"},
			expected: ExitAPI,
		},
		{
			name:     "malformed body",
			err:      &common.DeserializationError{Err: errors.New("unexpected end of JSON input")},
			expected: ExitDeserialization,
		},
		{
			name:     "wrapped error keeps its kind",
			err:      fmt.Errorf("outer: %w", &common.TransportError{URL: "u", Err: io.ErrUnexpectedEOF}),
			expected: ExitTransport,
		},
		{
			name:     "intake failure",
			err:      fmt.Errorf("failed to read input: %w", io.EOF),
			expected: ExitFailure,
		},
		{
			name:     "aborted prompt",
			err:      fmt.Errorf("failed to read input: %w", askIO.ErrAborted),
			expected: ExitInterrupted,
		},
		{
			name:     "cancelled",
			err:      &common.TransportError{URL: "u", Err: context.Canceled},
			expected: ExitInterrupted,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			expected: ExitFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}
