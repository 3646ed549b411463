// Package app contains the quiz session use cases.
// It coordinates domain questions and the console, clock and metrics ports;
// it knows nothing about terminals, files or exporters.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quiz-generator/internal/domain"
	"github.com/jsamuelsen/quiz-generator/internal/platform/logging"
	"github.com/jsamuelsen/quiz-generator/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen/quiz-generator/internal/app"

// state is a step of the session state machine.
type state int

const (
	stateNotStarted state = iota
	stateSubjectSelection
	stateQuestioning
	stateSummary
	stateReplay
	stateEnd
)

var stateNames = [...]string{"not_started", "subject_selection", "questioning", "summary", "replay", "end"}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("state(%d)", int(s))
}

// QuizService drives interactive quiz sessions.
//
// Example usage:
//
//	svc := app.NewQuizService(app.QuizServiceConfig{
//	    Bank:    qb,
//	    Console: console.NewConsole(os.Stdin, os.Stdout, logger),
//	    Logger:  logger,
//	})
//	err := svc.Run(ctx)
type QuizService struct {
	bank    ports.QuestionBank
	console ports.Console
	clock   ports.Clock
	metrics ports.QuizMetrics
	tracer  trace.Tracer
	newID   func() string
	logger  *slog.Logger
}

// QuizServiceConfig contains the dependencies of the quiz service.
// Bank and Console are required; the rest have working defaults.
type QuizServiceConfig struct {
	Bank    ports.QuestionBank
	Console ports.Console
	Clock   ports.Clock
	Metrics ports.QuizMetrics
	Tracer  trace.Tracer
	NewID   func() string
	Logger  *slog.Logger
}

// NewQuizService creates a quiz service with the provided dependencies.
// It panics if Bank or Console is nil.
func NewQuizService(cfg QuizServiceConfig) *QuizService {
	if cfg.Bank == nil {
		panic("app: QuizServiceConfig.Bank is required")
	}

	if cfg.Console == nil {
		panic("app: QuizServiceConfig.Console is required")
	}

	svc := &QuizService{
		bank:    cfg.Bank,
		console: cfg.Console,
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
		tracer:  cfg.Tracer,
		newID:   cfg.NewID,
		logger:  cfg.Logger,
	}

	if svc.clock == nil {
		svc.clock = ports.SystemClock{}
	}

	if svc.metrics == nil {
		svc.metrics = ports.NopMetrics{}
	}

	if svc.tracer == nil {
		svc.tracer = otel.Tracer(instrumentationName)
	}

	if svc.newID == nil {
		svc.newID = uuid.NewString
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	svc.logger = svc.logger.With(slog.String("component", "app.QuizService"))

	return svc
}

// Run plays one session: start confirmation, then attempts for as long as
// the user asks to replay. End of input finishes the session cleanly and
// returns nil. Context cancellation returns the context's error.
func (s *QuizService) Run(ctx context.Context) error {
	ctx = logging.WithContext(ctx, s.logger)
	ctx = logging.WithSessionID(ctx, s.newID())
	logger := logging.FromContext(ctx)

	logger.InfoContext(ctx, "session started")

	var (
		subject  domain.Subject
		result   *domain.AttemptResult
		attempts int
		err      error
	)

	for st := stateNotStarted; st != stateEnd; {
		logger.Log(ctx, logging.LevelTrace, "entering state", slog.String("state", st.String()))

		switch st {
		case stateNotStarted:
			st, err = s.start(ctx)

		case stateSubjectSelection:
			subject, st, err = s.selectSubject(ctx)

		case stateQuestioning:
			result, err = s.RunAttempt(ctx, subject)
			attempts++
			st = stateSummary

		case stateSummary:
			s.printSummary(result)
			st = stateReplay

		case stateReplay:
			st, err = s.replay(ctx)
		}

		if err != nil {
			break
		}
	}

	switch {
	case err == nil:
		logger.InfoContext(ctx, "session finished", slog.Int("attempts", attempts))
		return nil

	case domain.IsInputClosed(err):
		logger.InfoContext(ctx, "input closed, ending session", slog.Int("attempts", attempts))
		return nil

	default:
		logger.WarnContext(ctx, "session aborted", slog.Int("attempts", attempts), slog.Any("error", err))
		return err
	}
}

// start greets the user and asks for confirmation to begin.
func (s *QuizService) start(ctx context.Context) (state, error) {
	s.console.Printf(msgWelcome)
	s.console.Printf(promptStart)

	token, err := s.console.ReadToken(ctx)
	if err != nil {
		return stateEnd, fmt.Errorf("reading start confirmation: %w", err)
	}

	if !confirmed(token) {
		s.console.Printf(msgGoodbye)
		logging.FromContext(ctx).InfoContext(ctx, "user declined to start")

		return stateEnd, nil
	}

	return stateSubjectSelection, nil
}

// selectSubject reads a subject name. An unknown subject ends the session.
func (s *QuizService) selectSubject(ctx context.Context) (domain.Subject, state, error) {
	subjects := s.bank.Subjects()

	names := make([]string, len(subjects))
	for i, subj := range subjects {
		names[i] = string(subj)
	}

	s.console.Printf(promptSubject, strings.Join(names, "/"))

	token, err := s.console.ReadToken(ctx)
	if err != nil {
		return "", stateEnd, fmt.Errorf("reading subject: %w", err)
	}

	subject := domain.Subject(token)
	if !slices.Contains(subjects, subject) {
		s.console.Printf(msgBadSubject)
		logging.FromContext(ctx).InfoContext(ctx, "unknown subject", slog.String("subject", token))

		return "", stateEnd, nil
	}

	return subject, stateQuestioning, nil
}

// replay asks whether to run another attempt.
func (s *QuizService) replay(ctx context.Context) (state, error) {
	s.console.Printf(promptReplay)

	token, err := s.console.ReadToken(ctx)
	if err != nil {
		return stateEnd, fmt.Errorf("reading replay confirmation: %w", err)
	}

	if confirmed(token) {
		return stateSubjectSelection, nil
	}

	return stateEnd, nil
}

// RunAttempt asks every question of subject once, in order, and returns the
// tally. Each question's elapsed time is truncated to whole seconds before
// it is added to the total. Returns a NotFoundError for unknown subjects.
func (s *QuizService) RunAttempt(ctx context.Context, subject domain.Subject) (*domain.AttemptResult, error) {
	questions, err := s.bank.Questions(subject)
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	attemptID := s.newID()
	ctx = logging.WithAttemptID(ctx, attemptID)
	logger := logging.FromContext(ctx)

	ctx, span := s.tracer.Start(ctx, "quiz.attempt", trace.WithAttributes(
		attribute.String("quiz.subject", string(subject)),
		attribute.String("quiz.attempt_id", attemptID),
	))
	defer span.End()

	logger.InfoContext(ctx, "attempt started", slog.String("subject", string(subject)))

	result := domain.NewAttemptResult(attemptID, subject)

	for i, q := range questions {
		if q == nil {
			break
		}

		s.console.Printf(headerQuestion, i+1)

		start := s.clock.Now()
		outcome, err := s.askIndexed(ctx, i, q)
		elapsed := s.clock.Now().Sub(start)

		if err != nil {
			if !domain.IsInputClosed(err) {
				span.RecordError(err)
				span.SetStatus(codes.Error, "attempt interrupted")
			}

			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}

		result.Record(i, outcome, elapsed)
		s.metrics.RecordAnswer(ctx, subject, outcome, elapsed.Truncate(time.Second))

		logger.DebugContext(ctx, "question answered",
			slog.Int("question", i+1),
			slog.String("outcome", string(outcome)),
			slog.Int64("elapsed_seconds", domain.Seconds(elapsed)),
		)
	}

	s.metrics.RecordAttempt(ctx, result)

	span.SetAttributes(
		attribute.Int("quiz.correct", result.Correct),
		attribute.Int("quiz.incorrect", result.Incorrect),
		attribute.Int64("quiz.elapsed_seconds", domain.Seconds(result.Elapsed)),
	)

	logger.InfoContext(ctx, "attempt finished",
		slog.Int("correct", result.Correct),
		slog.Int("incorrect", result.Incorrect),
		slog.Int64("elapsed_seconds", domain.Seconds(result.Elapsed)),
	)

	return result, nil
}

// AskQuestion presents q, reads one response and reports whether it was
// correct. A malformed or out-of-range response is reported to the user and
// counts as not correct; it is not an error. Errors come only from the console.
func (s *QuizService) AskQuestion(ctx context.Context, q domain.Question) (bool, error) {
	outcome, err := s.ask(ctx, q)
	if err != nil {
		return false, err
	}

	return outcome == domain.OutcomeCorrect, nil
}

// askIndexed wraps ask in a span for question i.
func (s *QuizService) askIndexed(ctx context.Context, i int, q domain.Question) (domain.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "quiz.question", trace.WithAttributes(
		attribute.Int("quiz.question.index", i+1),
		attribute.String("quiz.question.kind", string(q.Kind())),
	))
	defer span.End()

	outcome, err := s.ask(ctx, q)
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("quiz.outcome", string(outcome)))

	return outcome, nil
}

func (s *QuizService) ask(ctx context.Context, q domain.Question) (domain.Outcome, error) {
	choices := q.Choices()

	s.console.Printf("%s\n", q.Prompt())

	for i, choice := range choices {
		s.console.Printf(lineOption, i+1, choice)
	}

	start := s.clock.Now()
	s.console.Printf(promptAnswer, len(choices))

	token, err := s.console.ReadToken(ctx)
	end := s.clock.Now()

	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	correct, err := q.Judge(token)
	if err != nil {
		if !domain.IsInvalidResponse(err) {
			return "", fmt.Errorf("judging answer: %w", err)
		}

		s.logInvalid(ctx, err)
		trace.SpanFromContext(ctx).AddEvent("invalid response")
		s.console.Printf(msgInvalid, len(choices))

		return domain.OutcomeInvalid, nil
	}

	outcome := domain.OutcomeIncorrect
	if correct {
		outcome = domain.OutcomeCorrect
		s.console.Printf(msgCorrect)
	} else {
		s.console.Printf(msgIncorrect, q.CorrectAnswer())
	}

	s.console.Printf(msgTimeTaken, domain.Seconds(end.Sub(start)))

	return outcome, nil
}

// logInvalid logs malformed and out-of-range responses differently.
func (s *QuizService) logInvalid(ctx context.Context, err error) {
	logger := logging.FromContext(ctx)

	var (
		parseErr *domain.ParseError
		rangeErr *domain.OutOfRangeError
	)

	switch {
	case errors.As(err, &parseErr):
		logger.InfoContext(ctx, "response is not a number", slog.String("response", parseErr.Input))
	case errors.As(err, &rangeErr):
		logger.InfoContext(ctx, "choice out of range",
			slog.Int("choice", rangeErr.Choice),
			slog.Int("min", rangeErr.Min),
			slog.Int("max", rangeErr.Max),
		)
	}
}

// printSummary writes the attempt totals.
func (s *QuizService) printSummary(result *domain.AttemptResult) {
	s.console.Printf(headerSummary)
	s.console.Printf(lineCorrect, result.Correct)
	s.console.Printf(lineIncorrect, result.Incorrect)
	s.console.Printf(lineTotalTime, domain.Seconds(result.Elapsed))
}
