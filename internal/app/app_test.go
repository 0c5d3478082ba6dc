package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/irl/ask/internal/config"
	"github.com/irl/ask/internal/llm/common"
	"github.com/irl/ask/internal/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompleter implements the common.Completer interface for testing
type MockCompleter struct {
	mock.Mock
}

// mocks the Complete method
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// newTestApp wires an App to in-memory streams
func newTestApp(client common.Completer, input string, opts ...Option) (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	base := []Option{WithIO(strings.NewReader(input), stdout, stderr), WithSpinner(false)}
	return NewApp(config.NewDefault(), slog.Default(), client, append(base, opts...)...), stdout, stderr
}

func TestApp_Run(t *testing.T) {
	mockClient := &MockCompleter{}
	mockClient.On("Complete", mock.Anything, "What is Go?").Return("A programming language.", nil)

	app, stdout, _ := newTestApp(mockClient, "  What is Go?  \n")

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "A programming language.", result)
	assert.Equal(t, "Enter your prompt: Response: A programming language.\n", stdout.String())
	mockClient.AssertExpectations(t)
}

func TestApp_RunEmptyLineIsSent(t *testing.T) {
	mockClient := &MockCompleter{}
	mockClient.On("Complete", mock.Anything, "").Return("No response from API", nil)

	app, stdout, _ := newTestApp(mockClient, "\n")

	_, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Response: No response from API\n")
	mockClient.AssertExpectations(t)
}

func TestApp_RunIntakeFailure(t *testing.T) {
	mockClient := &MockCompleter{}

	app, stdout, _ := newTestApp(mockClient, "")

	_, err := app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "failed to read input")
	assert.NotContains(t, stdout.String(), "Response:")
	mockClient.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestApp_RunClientErrorPassesThrough(t *testing.T) {
	cause := &common.APIError{StatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"}

	mockClient := &MockCompleter{}
	mockClient.On("Complete", mock.Anything, "hi").Return("", cause)

	app, stdout, _ := newTestApp(mockClient, "hi\n")

	_, err := app.Run(context.Background())

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, cause.Error(), err.Error())
	assert.Equal(t, ExitAPI, ExitCode(err))
	assert.NotContains(t, stdout.String(), "Response:")
}

func TestApp_RunVerbose(t *testing.T) {
	mockClient := &MockCompleter{}
	mockClient.On("Complete", mock.Anything, "hi").Return("hello", nil)

	app, stdout, stderr := newTestApp(mockClient, "hi\n",
		WithVerbose(true),
		WithKeySource(common.StaticKey("sk-test-1234567890")))

	_, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "gpt-4o-mini")
	assert.Contains(t, stderr.String(), "sk-...7890")
	assert.NotContains(t, stderr.String(), "sk-test-1234567890")
	assert.NotContains(t, stdout.String(), "gpt-4o-mini")
}

func TestApp_RunSpinnerIsClearedBeforeOutput(t *testing.T) {
	mockClient := &MockCompleter{}
	mockClient.On("Complete", mock.Anything, "hi").Return("hello", nil)

	app, stdout, stderr := newTestApp(mockClient, "hi\n", WithSpinner(true))

	_, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stderr.String(), "\r"), "spinner line should be cleared")
	assert.Contains(t, stdout.String(), "Response: hello\n")
}

func TestApp_RunNilDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, &MockCompleter{}).Run(context.Background())
	assert.EqualError(t, err, "configuration is nil")

	_, err = NewApp(config.NewDefault(), nil, nil).Run(context.Background())
	assert.EqualError(t, err, "no completion client configured")
}

func TestApp_RunAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"hi there"}}]}`)
	}))
	defer server.Close()

	cfg := config.NewDefault()
	cfg.Providers.OpenAI.BaseUrl = server.URL

	client, err := openai.NewFromConfig(cfg, common.StaticKey("sk-test"), nil)
	require.NoError(t, err)

	stdout := &bytes.Buffer{}
	app := NewApp(cfg, nil, client, WithIO(strings.NewReader("hello\n"), stdout, io.Discard), WithSpinner(false))

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "hi there", result)
	assert.Equal(t, "Enter your prompt: Response: hi there\n", stdout.String())
}

func TestGetSpinner(t *testing.T) {
	for _, model := range []string{"gpt-4o-mini", "o3-mini", "llama3"} {
		glyphs, speed := getSpinner(model)
		assert.NotEmpty(t, glyphs, model)
		assert.Positive(t, speed, model)
	}
}
