package domain

import "fmt"

// QuestionsPerSubject is the fixed size of every subject's question set.
const QuestionsPerSubject = 4

// Subject names a group of questions. Matching is exact and case-sensitive.
type Subject string

// SubjectSet is the ordered question list for one subject.
type SubjectSet struct {
	Subject   Subject
	Questions []Question
}

// QuestionBank owns the ordered question sets of every subject.
// It is built once and never mutated afterwards.
type QuestionBank struct {
	order []Subject
	sets  map[Subject][]Question
}

// NewQuestionBank builds a bank from sets, keeping their order.
// Every set needs a unique non-empty subject and exactly QuestionsPerSubject questions.
func NewQuestionBank(sets ...SubjectSet) (*QuestionBank, error) {
	if len(sets) == 0 {
		return nil, NewValidationError("subjects", "at least one subject is required")
	}

	bank := &QuestionBank{
		order: make([]Subject, 0, len(sets)),
		sets:  make(map[Subject][]Question, len(sets)),
	}

	for _, set := range sets {
		if set.Subject == "" {
			return nil, NewValidationError("subject", "cannot be empty")
		}

		if _, dup := bank.sets[set.Subject]; dup {
			return nil, NewValidationErrorWithValue("subject", "duplicate subject", set.Subject)
		}

		if len(set.Questions) != QuestionsPerSubject {
			return nil, NewValidationErrorWithValue("questions",
				fmt.Sprintf("subject %s needs %d questions, got %d",
					set.Subject, QuestionsPerSubject, len(set.Questions)),
				set.Subject)
		}

		for i, q := range set.Questions {
			if q == nil {
				return nil, NewValidationErrorWithValue("questions",
					fmt.Sprintf("subject %s question %d is missing", set.Subject, i+1),
					set.Subject)
			}
		}

		qs := make([]Question, len(set.Questions))
		copy(qs, set.Questions)

		bank.order = append(bank.order, set.Subject)
		bank.sets[set.Subject] = qs
	}

	return bank, nil
}

// Subjects returns the subjects in bank order.
func (b *QuestionBank) Subjects() []Subject {
	out := make([]Subject, len(b.order))
	copy(out, b.order)

	return out
}

// Questions returns the questions of subject in presentation order.
// Returns a NotFoundError for unknown subjects.
func (b *QuestionBank) Questions(subject Subject) ([]Question, error) {
	qs, ok := b.sets[subject]
	if !ok {
		return nil, NewNotFoundError("subject", string(subject))
	}

	out := make([]Question, len(qs))
	copy(out, qs)

	return out, nil
}
