package io

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple line", input: "hello\n", expected: "hello"},
		{name: "surrounding whitespace", input: "  What is Go?  \n", expected: "What is Go?"},
		{name: "CRLF terminator", input: "windows line\r\n", expected: "windows line"},
		{name: "tabs are trimmed", input: "\tindented\t\n", expected: "indented"},
		{name: "empty line is accepted", input: "\n", expected: ""},
		{name: "whitespace only line", input: "   \n", expected: ""},
		{name: "final line without terminator", input: "no newline", expected: "no newline"},
		{name: "only the first line is read", input: "first\nsecond\n", expected: "first"},
		{name: "inner whitespace kept", input: "a  b\tc\n", expected: "a  b\tc"},
		{name: "unicode", input: "¿qué tal? 👋\n", expected: "¿qué tal? 👋"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			prompt, err := ReadPrompt(strings.NewReader(tt.input), &out)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, prompt)
			assert.Equal(t, "Enter your prompt: ", out.String())
		})
	}
}

func TestReadPrompt_EmptyStream(t *testing.T) {
	var out bytes.Buffer

	prompt, err := ReadPrompt(strings.NewReader(""), &out)

	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, prompt)
	assert.Equal(t, PromptLabel, out.String(), "label is written before reading")
}

func TestReadPrompt_NilReader(t *testing.T) {
	_, err := ReadPrompt(nil, io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPrompt_NilWriter(t *testing.T) {
	prompt, err := ReadPrompt(strings.NewReader("quiet\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "quiet", prompt)
}

func TestReadPrompt_FlushesBufferedWriter(t *testing.T) {
	var out bytes.Buffer
	buffered := bufio.NewWriter(&out)

	_, err := ReadPrompt(strings.NewReader("hi\n"), buffered)

	require.NoError(t, err)
	assert.Equal(t, PromptLabel, out.String())
	assert.Zero(t, buffered.Buffered())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write refused")
}

func TestReadPrompt_WriteError(t *testing.T) {
	_, err := ReadPrompt(strings.NewReader("hi\n"), failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write refused")
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestReadPrompt_ReadError(t *testing.T) {
	_, err := ReadPrompt(failingReader{}, io.Discard)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "failed to read from stdin")
}

func TestReadPromptFrom_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	go func() {
		defer w.Close()
		_, _ = w.WriteString("  piped prompt  \nignored\n")
	}()

	var out bytes.Buffer
	prompt, err := ReadPromptFrom(r, &out)

	require.NoError(t, err)
	assert.Equal(t, "piped prompt", prompt)
	assert.Equal(t, PromptLabel, out.String())
}

func TestReadPromptFrom_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("from a file")
	require.NoError(t, err)
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	prompt, err := ReadPromptFrom(f, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "from a file", prompt)
}

func TestReadPromptFrom_ClosedPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, w.Close())

	_, err = ReadPromptFrom(r, io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPromptFrom_NilStdin(t *testing.T) {
	_, err := ReadPromptFrom(nil, io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}
