package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// getSpinner returns spinner glyphs and frame interval in milliseconds
// just for fun, these vary with the model family
func getSpinner(modelName string) (glyphs []string, speed int) {
	searchText := strings.ToLower(modelName)

	switch {
	case strings.HasPrefix(searchText, "gpt"):
		glyphs = []string{
			"⠋", "⠙", "⠚", "⠒", "⠂", "⠂", "⠒", "⠲", "⠴",
			"⠦", "⠖", "⠒", "⠐", "⠐", "⠒", "⠓", "⠋",
		}
		speed = 125
	case strings.HasPrefix(searchText, "o1"), strings.HasPrefix(searchText, "o3"), strings.HasPrefix(searchText, "o4"):
		glyphs = []string{"◜", "◠", "◝", "◞", "◡", "◟"}
		speed = 333
	default:
		glyphs = []string{
			"⠄", "⠆", "⠇", "⠋", "⠙", "⠸", "⠰",
			"⠠", "⠰", "⠸", "⠙", "⠋", "⠇", "⠆",
		}
		speed = 200
	}
	return
}

// startSpinner draws a spinner on w until the returned stop func is called
// stop blocks until the line has been cleared
func startSpinner(ctx context.Context, w io.Writer, modelName string) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			// always clear this line when the goroutine exits
			fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", 80))
		}()

		spinGlyphs, spinSpeed := getSpinner(modelName)
		ticker := time.NewTicker(time.Duration(spinSpeed) * time.Millisecond)
		defer ticker.Stop()

		i := 0
		cyan := color.New(color.FgCyan).SprintFunc()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				message := fmt.Sprintf("%s %s is generating...", spinGlyphs[i], modelName)
				fmt.Fprintf(w, "\r%s", cyan(message))
				i = (i + 1) % len(spinGlyphs)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
