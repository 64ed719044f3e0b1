// Package quiz holds the assessment question banks and the session state
// machine that walks a student through one.
//
// A session is ephemeral: it lives for one quiz attempt and its answer tags
// are handed to the recommendation heuristic on completion. Answers survive
// backward navigation; only a retake clears them.
package quiz

import (
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/recommend"
)

// Option is one selectable answer. Value is the tag consumed by
// classification; Label is display text.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one prompt with a fixed option set.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

func (q Question) hasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Bank returns the ordered question list for a quiz.
func Bank(quizID string) ([]Question, error) {
	switch quizID {
	case recommend.QuizStreamSelector:
		return streamQuestions, nil
	case recommend.QuizCareerCompass:
		return careerQuestions, nil
	}
	return nil, domain.NotFound("quiz.bank", "quiz", quizID)
}

// ValidateAnswers checks a full answer sheet against a quiz's question
// bank: one answer per question, each drawn from that question's options.
func ValidateAnswers(quizID string, answers []string) error {
	const op = "quiz.validate_answers"

	questions, err := Bank(quizID)
	if err != nil {
		return err
	}
	if len(answers) != len(questions) {
		return domain.Errorf(domain.EINVALID, op, "expected %d answers, got %d", len(questions), len(answers))
	}
	for i, answer := range answers {
		if !questions[i].hasOption(answer) {
			return domain.Errorf(domain.EINVALID, op, "answer %q is not an option for question %d", answer, i+1)
		}
	}
	return nil
}

// QuizIDs lists the available assessments in display order.
func QuizIDs() []string {
	return []string{recommend.QuizStreamSelector, recommend.QuizCareerCompass}
}
