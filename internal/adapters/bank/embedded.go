// Package bank provides the built-in question bank.
package bank

import (
	"fmt"

	"github.com/jsamuelsen/quiz-generator/internal/domain"
)

// Subjects shipped with the quiz.
const (
	Math    domain.Subject = "Math"
	Science domain.Subject = "Science"
)

// subjectData is the raw question list of one subject.
type subjectData struct {
	subject   domain.Subject
	questions []domain.MultipleChoiceSpec
}

var embedded = []subjectData{
	{
		subject: Math,
		questions: []domain.MultipleChoiceSpec{
			{
				Prompt:  "What is 2 + 2?",
				Answer:  "4",
				Options: [domain.MultipleChoiceOptions]string{"3", "4", "5", "6"},
			},
			{
				Prompt:  "What is 5 * 6?",
				Answer:  "30",
				Options: [domain.MultipleChoiceOptions]string{"25", "30", "35", "40"},
			},
			{
				Prompt:  "What is the square root of 64?",
				Answer:  "8",
				Options: [domain.MultipleChoiceOptions]string{"6", "7", "8", "9"},
			},
			{
				Prompt:  "What is the value of pi (π) to two decimal places?",
				Answer:  "3.14",
				Options: [domain.MultipleChoiceOptions]string{"3.12", "3.14", "3.16", "3.18"},
			},
		},
	},
	{
		subject: Science,
		questions: []domain.MultipleChoiceSpec{
			{
				Prompt:  "What is the powerhouse of the cell?",
				Answer:  "Mitochondria",
				Options: [domain.MultipleChoiceOptions]string{"Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"},
			},
			{
				Prompt:  "What is the largest planet in our solar system?",
				Answer:  "Jupiter",
				Options: [domain.MultipleChoiceOptions]string{"Mars", "Jupiter", "Saturn", "Neptune"},
			},
			{
				Prompt:  "Which gas do plants primarily absorb during photosynthesis?",
				Answer:  "Carbon dioxide",
				Options: [domain.MultipleChoiceOptions]string{"Oxygen", "Carbon monoxide", "Carbon dioxide", "Nitrogen"},
			},
			{
				Prompt:  "What is the chemical symbol for water?",
				Answer:  "H2O",
				Options: [domain.MultipleChoiceOptions]string{"H2O", "CO2", "O2", "NaCl"},
			},
		},
	},
}

// Default builds the question bank shipped with the quiz.
// An error means the embedded data itself is broken.
func Default() (*domain.QuestionBank, error) {
	sets := make([]domain.SubjectSet, 0, len(embedded))

	for _, data := range embedded {
		questions := make([]domain.Question, 0, len(data.questions))

		for i, spec := range data.questions {
			q, err := domain.NewMultipleChoiceQuestion(spec)
			if err != nil {
				return nil, fmt.Errorf("building %s question %d: %w", data.subject, i+1, err)
			}

			questions = append(questions, q)
		}

		sets = append(sets, domain.SubjectSet{Subject: data.subject, Questions: questions})
	}

	qb, err := domain.NewQuestionBank(sets...)
	if err != nil {
		return nil, fmt.Errorf("building question bank: %w", err)
	}

	return qb, nil
}
