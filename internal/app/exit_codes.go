// Provides exit code functionality
//
// Every failure maps to a non-zero status; the error kinds of the completion
// client each get their own code so scripts can tell them apart.
package app

import (
	"context"
	"errors"

	askIO "github.com/irl/ask/internal/io"
	"github.com/irl/ask/internal/llm/common"
)

// exit codes
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitConfiguration   = 2
	ExitTransport       = 3
	ExitAPI             = 4
	ExitDeserialization = 5
	ExitInterrupted     = 130
)

// ExitCode returns the process exit status for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		cfgErr       *common.ConfigurationError
		transportErr *common.TransportError
		apiErr       *common.APIError
		decodeErr    *common.DeserializationError
	)

	switch {
	case errors.Is(err, askIO.ErrAborted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &cfgErr):
		return ExitConfiguration
	case errors.As(err, &transportErr):
		return ExitTransport
	case errors.As(err, &apiErr):
		return ExitAPI
	case errors.As(err, &decodeErr):
		return ExitDeserialization
	default:
		return ExitFailure
	}
}
