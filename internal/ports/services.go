// Package ports defines interfaces for the quiz's external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than on a terminal, a clock or a metrics backend.
//
// Port Design Principles:
//   - Context as first parameter for anything that may block
//   - Return domain types, never adapter types
//   - Error returns use domain error types (ErrNotFound, ErrInputClosed, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quiz-generator/internal/domain"
)

// Console is the interactive text terminal the quiz talks to.
//
// Example usage in application layer:
//
//	c.Printf("Enter your answer (1-%d): ", n)
//	token, err := c.ReadToken(ctx)
type Console interface {
	// ReadToken blocks until the next whitespace-delimited token is available.
	// Returns domain.ErrInputClosed once input is exhausted, or ctx.Err() if
	// the context is cancelled first.
	ReadToken(ctx context.Context) (string, error)

	// Printf writes formatted text to the user. Write failures are the
	// adapter's concern and are not reported back.
	Printf(format string, args ...any)
}

// Clock supplies timestamps for measuring response time.
type Clock interface {
	Now() time.Time
}

// QuestionBank gives read access to the fixed question sets.
type QuestionBank interface {
	// Subjects returns the available subjects in display order.
	Subjects() []domain.Subject

	// Questions returns the ordered questions for subject.
	// Returns domain.ErrNotFound if the subject does not exist.
	Questions(subject domain.Subject) ([]domain.Question, error)
}

// QuizMetrics records quiz activity. Implementations must be cheap enough to
// call once per answer and must never fail the session.
type QuizMetrics interface {
	// RecordAnswer records one judged question.
	RecordAnswer(ctx context.Context, subject domain.Subject, outcome domain.Outcome, elapsed time.Duration)

	// RecordAttempt records a finished attempt.
	RecordAttempt(ctx context.Context, result *domain.AttemptResult)
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// NopMetrics discards everything.
type NopMetrics struct{}

// RecordAnswer implements QuizMetrics.
func (NopMetrics) RecordAnswer(context.Context, domain.Subject, domain.Outcome, time.Duration) {}

// RecordAttempt implements QuizMetrics.
func (NopMetrics) RecordAttempt(context.Context, *domain.AttemptResult) {}
