// Package console adapts a pair of byte streams into the quiz's interactive
// terminal. Input is consumed one whitespace-delimited token at a time, so an
// answer typed as "2 3" satisfies two consecutive prompts.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quiz-generator/internal/domain"
	"github.com/jsamuelsen/quiz-generator/internal/platform/logging"
	"github.com/jsamuelsen/quiz-generator/internal/ports"
)

// maxTokenSize bounds a single token. Longer input fails the scan.
const maxTokenSize = 64 * 1024

// scanResult is one token or the terminal scan error.
type scanResult struct {
	token string
	err   error
}

// Console implements ports.Console over an io.Reader and io.Writer.
type Console struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger

	startOnce sync.Once
	closeOnce sync.Once
	tokens    chan scanResult
	stop      chan struct{}
}

var _ ports.Console = (*Console)(nil)

// NewConsole creates a console reading tokens from in and writing to out.
// The reader goroutine starts on the first ReadToken call.
func NewConsole(in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = logging.FromContext(context.Background())
	}

	return &Console{
		in:     in,
		out:    out,
		logger: logger,
		tokens: make(chan scanResult),
		stop:   make(chan struct{}),
	}
}

// ReadToken returns the next token. It returns domain.ErrInputClosed when the
// input is exhausted and ctx.Err() when ctx is done first.
func (c *Console) ReadToken(ctx context.Context) (string, error) {
	c.startOnce.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.tokens:
		if !ok {
			return "", domain.ErrInputClosed
		}
		if res.err != nil {
			return "", fmt.Errorf("reading console input: %w", res.err)
		}

		c.logger.Log(ctx, logging.LevelTrace, "console token read", slog.Int("length", len(res.token)))

		return res.token, nil
	}
}

// Printf writes to the output stream. A failed write is logged and dropped.
func (c *Console) Printf(format string, args ...any) {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.logger.Warn("console write failed", slog.String("error", err.Error()))
	}
}

// Close releases the reader goroutine if it is blocked handing over a token.
// It does not close the underlying reader.
func (c *Console) Close() error {
	c.closeOnce.Do(func() { close(c.stop) })
	return nil
}

// scan feeds tokens into c.tokens until input ends or the console is closed.
// A read error is delivered once before the channel is closed.
func (c *Console) scan() {
	defer close(c.tokens)

	scanner := bufio.NewScanner(c.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		if !c.send(scanResult{token: scanner.Text()}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		c.send(scanResult{err: err})
	}
}

func (c *Console) send(res scanResult) bool {
	select {
	case c.tokens <- res:
		return true
	case <-c.stop:
		return false
	}
}
