package common

import "context"

// Completer turns a single prompt into completion text
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// KeySource yields the API credential; it is consulted once per request
type KeySource func() string

// StaticKey returns a KeySource that always yields key
func StaticKey(key string) KeySource {
	return func() string { return key }
}
