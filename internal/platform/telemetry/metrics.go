package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quiz-generator/internal/domain"
	"github.com/jsamuelsen/quiz-generator/internal/ports"
)

const (
	instrumentationName = "github.com/jsamuelsen/quiz-generator/telemetry"

	metricsNamespace = "quiz"
)

// responseBuckets are the response-time histogram buckets in seconds.
var responseBuckets = []float64{1, 2, 5, 10, 20, 30, 60, 120}

// Tracer returns the tracer used for quiz spans.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// QuizMetrics records quiz activity twice: into a private Prometheus registry
// that can be dumped as a textfile at exit, and through OpenTelemetry
// instruments exported by the meter provider.
type QuizMetrics struct {
	registry *prometheus.Registry

	answers         *prometheus.CounterVec
	responseSeconds *prometheus.HistogramVec
	attempts        *prometheus.CounterVec
	lastScore       *prometheus.GaugeVec

	answerCounter   metric.Int64Counter
	responseHist    metric.Float64Histogram
	attemptsCounter metric.Int64Counter
}

var _ ports.QuizMetrics = (*QuizMetrics)(nil)

// NewQuizMetrics creates the recorder. A nil provider uses the global meter
// provider, which is a noop unless telemetry is enabled.
func NewQuizMetrics(provider metric.MeterProvider) (*QuizMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	m := &QuizMetrics{
		registry: prometheus.NewRegistry(),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "answers_total",
				Help:      "Total number of answered questions",
			},
			[]string{"subject", "outcome"},
		),
		responseSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "response_duration_seconds",
				Help:      "Time taken to answer a question",
				Buckets:   responseBuckets,
			},
			[]string{"subject"},
		),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "attempts_total",
				Help:      "Total number of completed attempts",
			},
			[]string{"subject"},
		),
		lastScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "last_attempt_correct",
				Help:      "Correct answers in the most recent attempt",
			},
			[]string{"subject"},
		),
	}

	for _, c := range []prometheus.Collector{m.answers, m.responseSeconds, m.attempts, m.lastScore} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	meter := provider.Meter(instrumentationName)

	var err error

	m.answerCounter, err = meter.Int64Counter(
		"quiz.answers",
		metric.WithDescription("Number of answered questions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating answer counter: %w", err)
	}

	m.responseHist, err = meter.Float64Histogram(
		"quiz.response.duration",
		metric.WithDescription("Time taken to answer a question"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(responseBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("creating response histogram: %w", err)
	}

	m.attemptsCounter, err = meter.Int64Counter(
		"quiz.attempts",
		metric.WithDescription("Number of completed attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating attempt counter: %w", err)
	}

	return m, nil
}

// RecordAnswer implements ports.QuizMetrics.
func (m *QuizMetrics) RecordAnswer(ctx context.Context, subject domain.Subject, outcome domain.Outcome, elapsed time.Duration) {
	m.answers.WithLabelValues(string(subject), string(outcome)).Inc()
	m.responseSeconds.WithLabelValues(string(subject)).Observe(elapsed.Seconds())

	attrs := metric.WithAttributes(
		attribute.String("quiz.subject", string(subject)),
		attribute.String("quiz.outcome", string(outcome)),
	)
	m.answerCounter.Add(ctx, 1, attrs)
	m.responseHist.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("quiz.subject", string(subject))))
}

// RecordAttempt implements ports.QuizMetrics.
func (m *QuizMetrics) RecordAttempt(ctx context.Context, result *domain.AttemptResult) {
	if result == nil {
		return
	}

	subject := string(result.Subject)

	m.attempts.WithLabelValues(subject).Inc()
	m.lastScore.WithLabelValues(subject).Set(float64(result.Correct))

	m.attemptsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("quiz.subject", subject)))
}

// Gatherer exposes the Prometheus registry.
func (m *QuizMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the registry in Prometheus text format to path,
// replacing the file atomically.
func (m *QuizMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
