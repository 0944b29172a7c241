// Package cli hosts the interactive chat loop.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/canyon289/ai-agent-basics/internal/domain"
	"github.com/canyon289/ai-agent-basics/internal/usecases"
)

const maxInputLineBytes = 1024 * 1024

// ChatLoop is a runnable that reads user queries line by line and prints the
// answer of each turn until the quit token, end of input or cancellation.
type ChatLoop struct {
	Logger      *log.Logger          `resolve:""`
	ProcessTurn usecases.ProcessTurn `resolve:""`
	QuitToken   string               `config:"CHAT_QUIT_TOKEN" default:"q"`
	TurnTimeout time.Duration        `config:"TURN_TIMEOUT" default:"0s"`
	input       io.Reader
	output      io.Writer
}

type inputLine struct {
	text string
	err  error
}

// Run starts the chat loop.
func (cl ChatLoop) Run(ctx context.Context) error {
	in, out := cl.input, cl.output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	quitToken := strings.TrimSpace(cl.QuitToken)
	if quitToken == "" {
		quitToken = "q"
	}

	cl.Logger.Println("ChatLoop: running...")
	fmt.Fprintln(out, "\nMCP Client Started!")
	fmt.Fprintf(out, "Type your queries or '%s' to exit.\n", quitToken)

	// The reader goroutine may stay blocked on stdin after cancellation; it ends with the process.
	lines := readLines(ctx, in)
	for {
		fmt.Fprint(out, "\nuser input: ")

		select {
		case <-ctx.Done():
			cl.Logger.Println("ChatLoop: stopping...")
			return nil
		case line, ok := <-lines:
			if !ok {
				cl.Logger.Println("ChatLoop: end of input")
				return nil
			}
			if line.err != nil {
				return fmt.Errorf("failed to read user input: %w", line.err)
			}

			text := strings.TrimSpace(line.text)
			if text == "" {
				continue
			}
			if strings.EqualFold(text, quitToken) {
				cl.Logger.Println("ChatLoop: quit requested")
				return nil
			}
			cl.handleTurn(ctx, out, text)
		}
	}
}

// handleTurn runs a single turn. Errors end the turn, never the loop.
func (cl ChatLoop) handleTurn(ctx context.Context, out io.Writer, text string) {
	turn := domain.NewUserTurn(text)
	cl.Logger.Printf("ChatLoop: user prompt is: %s", text)

	turnCtx := ctx
	if cl.TurnTimeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(ctx, cl.TurnTimeout)
		defer cancel()
	}

	answer, err := cl.ProcessTurn.Execute(turnCtx, turn)
	if err != nil {
		cl.Logger.Printf("ChatLoop: turn %s failed (%s): %v", turn.ID, domain.TurnErrorKind(err), err)
		fmt.Fprintf(out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintln(out, "\n"+answer)
}

func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxInputLineBytes)
		for scanner.Scan() {
			select {
			case lines <- inputLine{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}
