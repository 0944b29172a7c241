package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Logs go to stderr by default: stdout carries the chat transcript, or the
// MCP stream when the process runs as a stdio server.
type InitLogger struct {
	Output string `config:"LOG_OUTPUT" default:"stderr"`
	Prefix string `config:"LOG_PREFIX" default:"-"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	w, err := outputWriter(il.Output)
	if err != nil {
		return ctx, err
	}
	prefix := il.Prefix
	if prefix == "-" {
		prefix = ""
	}
	depend.Register(log.New(w, prefix, log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}

func outputWriter(output string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard", "none":
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("unsupported log output %q", output)
	}
}
