package domain

import "time"

// Outcome classifies a single answered question.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeInvalid   Outcome = "invalid"
)

// AnswerRecord is what happened to one question during an attempt.
type AnswerRecord struct {
	Index   int
	Outcome Outcome
	Elapsed time.Duration
}

// AttemptResult is the tally of one pass through a subject's questions.
// It lives for a single attempt and is never persisted.
type AttemptResult struct {
	ID        string
	Subject   Subject
	Correct   int
	Incorrect int
	Elapsed   time.Duration
	Answers   []AnswerRecord
}

// NewAttemptResult starts an empty tally.
func NewAttemptResult(id string, subject Subject) *AttemptResult {
	return &AttemptResult{
		ID:      id,
		Subject: subject,
		Answers: make([]AnswerRecord, 0, QuestionsPerSubject),
	}
}

// Record adds one answered question. Invalid responses count as incorrect.
// Elapsed time is truncated to whole seconds before it is accumulated.
func (r *AttemptResult) Record(index int, outcome Outcome, elapsed time.Duration) {
	elapsed = elapsed.Truncate(time.Second)

	if outcome == OutcomeCorrect {
		r.Correct++
	} else {
		r.Incorrect++
	}

	r.Elapsed += elapsed
	r.Answers = append(r.Answers, AnswerRecord{Index: index, Outcome: outcome, Elapsed: elapsed})
}

// Total returns how many questions were answered.
func (r *AttemptResult) Total() int {
	return r.Correct + r.Incorrect
}

// Seconds returns the accumulated time as whole seconds.
func Seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
