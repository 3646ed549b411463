package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quiz-generator/internal/adapters/bank"
	"github.com/jsamuelsen/quiz-generator/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock only moves when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// scriptedConsole replays a fixed list of tokens and records all output.
// Every read advances the clock by thinkTime, simulating the user typing.
type scriptedConsole struct {
	tokens    []string
	clock     *fakeClock
	thinkTime time.Duration
	out       strings.Builder
}

func newScriptedConsole(script string, clock *fakeClock, thinkTime time.Duration) *scriptedConsole {
	return &scriptedConsole{
		tokens:    strings.Fields(script),
		clock:     clock,
		thinkTime: thinkTime,
	}
}

func (c *scriptedConsole) ReadToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(c.tokens) == 0 {
		return "", domain.ErrInputClosed
	}

	c.clock.Advance(c.thinkTime)

	token := c.tokens[0]
	c.tokens = c.tokens[1:]

	return token, nil
}

func (c *scriptedConsole) Printf(format string, args ...any) {
	fmt.Fprintf(&c.out, format, args...)
}

func (c *scriptedConsole) Output() string {
	return c.out.String()
}

// sequentialIDs returns "id-1", "id-2", ...
func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func defaultBank(t *testing.T) *domain.QuestionBank {
	t.Helper()

	qb, err := bank.Default()
	require.NoError(t, err)

	return qb
}

// newTestService wires a service over the built-in bank and a scripted console.
func newTestService(t *testing.T, script string, thinkTime time.Duration) (*QuizService, *scriptedConsole) {
	t.Helper()

	clock := newFakeClock()
	console := newScriptedConsole(script, clock, thinkTime)

	svc := NewQuizService(QuizServiceConfig{
		Bank:    defaultBank(t),
		Console: console,
		Clock:   clock,
		NewID:   sequentialIDs(),
		Logger:  discardLogger(),
	})

	return svc, console
}

// stubQuestion lets tests control Judge directly.
type stubQuestion struct {
	prompt  string
	answer  string
	choices []string
	judge   func(string) (bool, error)
}

func (q *stubQuestion) Kind() domain.Kind                   { return "stub" }
func (q *stubQuestion) Prompt() string                      { return q.prompt }
func (q *stubQuestion) CorrectAnswer() string               { return q.answer }
func (q *stubQuestion) Choices() []string                   { return q.choices }
func (q *stubQuestion) Judge(response string) (bool, error) { return q.judge(response) }
