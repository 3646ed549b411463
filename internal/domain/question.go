package domain

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MultipleChoiceOptions is the number of options every multiple-choice question offers.
const MultipleChoiceOptions = 4

// Kind identifies a question variant.
type Kind string

const (
	// KindMultipleChoice is a numbered-option question answered by index.
	KindMultipleChoice Kind = "multiple_choice"
)

// Question is a single quiz question that can present itself and judge a response.
// Implementations are immutable and safe to reuse across attempts.
type Question interface {
	// Kind returns the variant of this question.
	Kind() Kind

	// Prompt returns the question text.
	Prompt() string

	// CorrectAnswer returns the text of the correct answer.
	CorrectAnswer() string

	// Choices returns the options to present, in display order.
	// Variants without fixed options return nil.
	Choices() []string

	// Judge decides whether a raw response is correct.
	// A response that cannot be judged returns a ParseError or OutOfRangeError.
	Judge(response string) (bool, error)
}

// MultipleChoiceSpec is the raw data a MultipleChoiceQuestion is built from.
type MultipleChoiceSpec struct {
	Prompt  string                        `validate:"required"`
	Answer  string                        `validate:"required"`
	Options [MultipleChoiceOptions]string `validate:"dive,required"`
}

// MultipleChoiceQuestion offers four options, exactly one of which is correct.
type MultipleChoiceQuestion struct {
	prompt  string
	answer  string
	options [MultipleChoiceOptions]string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewMultipleChoiceQuestion validates spec and builds the question.
// Exactly one option must equal the answer.
func NewMultipleChoiceQuestion(spec MultipleChoiceSpec) (*MultipleChoiceQuestion, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, validationFromStruct(err, spec)
	}

	matches := 0
	for _, opt := range spec.Options {
		if opt == spec.Answer {
			matches++
		}
	}

	if matches != 1 {
		return nil, NewValidationErrorWithValue("options",
			"exactly one option must equal the answer, found "+strconv.Itoa(matches),
			spec.Prompt)
	}

	return &MultipleChoiceQuestion{
		prompt:  spec.Prompt,
		answer:  spec.Answer,
		options: spec.Options,
	}, nil
}

// Kind implements Question.
func (q *MultipleChoiceQuestion) Kind() Kind {
	return KindMultipleChoice
}

// Prompt implements Question.
func (q *MultipleChoiceQuestion) Prompt() string {
	return q.prompt
}

// CorrectAnswer implements Question.
func (q *MultipleChoiceQuestion) CorrectAnswer() string {
	return q.answer
}

// Choices implements Question.
func (q *MultipleChoiceQuestion) Choices() []string {
	out := make([]string, len(q.options))
	copy(out, q.options[:])

	return out
}

// Judge parses response as a 1-based option index and compares the selected
// option with the correct answer using exact string equality.
func (q *MultipleChoiceQuestion) Judge(response string) (bool, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil {
		return false, NewParseError(response, err)
	}

	if choice < 1 || choice > len(q.options) {
		return false, NewOutOfRangeError(choice, 1, len(q.options))
	}

	return q.options[choice-1] == q.answer, nil
}

// validationFromStruct converts the first validator failure into a ValidationError.
func validationFromStruct(err error, spec MultipleChoiceSpec) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]

	return NewValidationErrorWithValue(strings.ToLower(fe.Field()), "failed "+fe.Tag(), spec.Prompt)
}
