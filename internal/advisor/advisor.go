// Package advisor produces short in-game commentary from a generative
// language model. The Broker runs one request at a time in the background
// and hands the reply to the game loop through a single-slot channel.
package advisor

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Advisor turns a prompt into a short free-text reply.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// AdvisorFunc adapts a plain function to the Advisor interface.
type AdvisorFunc func(ctx context.Context, prompt string) (string, error)

// Advise calls f.
func (f AdvisorFunc) Advise(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var (
	// ErrNoAPIKey is returned when no credential is configured.
	ErrNoAPIKey = errors.New("advisor: no API key configured")
	// ErrEmptyReply is returned when the model answers without usable text.
	ErrEmptyReply = errors.New("advisor: empty reply")
	// ErrBlocked is returned when the service refuses the prompt.
	ErrBlocked = errors.New("advisor: prompt blocked")
)

// Clean collapses whitespace and strips wrapping quotes from a model reply.
func Clean(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = strings.Trim(text, "\"'“”")
	return strings.TrimSpace(text)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
