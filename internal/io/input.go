package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// PromptLabel is written before the prompt is read
const PromptLabel = "Enter your prompt: "

// ErrAborted is returned when the user presses Ctrl-C at the prompt
var ErrAborted = errors.New("prompt aborted")

type flusher interface {
	Flush() error
}

// ReadPrompt writes the label to w and reads a single line from r
// surrounding whitespace (the line terminator included) is trimmed; an empty
// line is a valid prompt, but a stream with no bytes at all is an io.EOF error
func ReadPrompt(r io.Reader, w io.Writer) (string, error) {
	if w != nil {
		if _, err := io.WriteString(w, PromptLabel); err != nil {
			return "", fmt.Errorf("failed to write prompt label: %w", err)
		}
		if f, ok := w.(flusher); ok {
			if err := f.Flush(); err != nil {
				return "", fmt.Errorf("failed to flush prompt label: %w", err)
			}
		}
	}

	if r == nil {
		return "", fmt.Errorf("no input stream: %w", io.EOF)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		// a final line without terminator still counts
		if line == "" {
			return "", fmt.Errorf("no input received: %w", io.EOF)
		}
	}

	return strings.TrimSpace(line), nil
}

// ReadPromptFrom reads the prompt from stdin, using line editing when stdin is a terminal
func ReadPromptFrom(stdin *os.File, w io.Writer) (string, error) {
	if stdin == nil {
		return "", fmt.Errorf("no input stream: %w", io.EOF)
	}

	if isTerminal(stdin) && liner.TerminalSupported() {
		return readLine()
	}

	return ReadPrompt(stdin, w)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readLine prompts on the controlling terminal; liner writes the label itself
func readLine() (string, error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	text, err := line.Prompt(PromptLabel)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no input received: %w", io.EOF)
		}
		return "", fmt.Errorf("failed to read from terminal: %w", err)
	}

	return strings.TrimSpace(text), nil
}
