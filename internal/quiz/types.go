// Package quiz defines the shared structural contract for generated quizzes:
// question shape, answer cardinality rules, and the audit metadata attached
// to an accepted quiz. Both the generation pipeline and the grading engine
// depend on these types.
package quiz

import "fmt"

// Difficulty selects the cognitive level of generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // factual recall
	DifficultyMedium Difficulty = "medium" // concept application
	DifficultyHard   Difficulty = "hard"   // analysis and case-based reasoning
)

// ParseDifficulty parses a difficulty string, defaulting to medium when
// empty. Unknown values are an error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	case "":
		return DifficultyMedium, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// AnswerMode distinguishes single-answer from multi-select questions.
type AnswerMode string

const (
	// ModeSingle requires exactly one correct option.
	ModeSingle AnswerMode = "single"

	// ModeMultiple requires at least two correct options.
	ModeMultiple AnswerMode = "multiple"
)

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// QuestionCount is the canonical number of questions per quiz.
const QuestionCount = 3

// Question is one quiz question. The binding contract, verified after
// generation and relied on by the grader: every string in Answers is
// byte-identical to one of the Options.
type Question struct {
	// ID is unique within a quiz and sequential starting at 1.
	ID int `json:"id"`

	// Mode determines answer cardinality and grading strictness.
	Mode AnswerMode `json:"type"`

	// Topic is a short free-text label, one to three words.
	Topic string `json:"topic"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"question"`

	// Options is the ordered list of exactly 4 distinct option strings.
	Options []string `json:"options"`

	// Answers is the non-empty set of correct option strings.
	Answers []string `json:"answer"`

	// Explanation is shown after grading.
	Explanation string `json:"explanation"`

	// Hint is a one-sentence nudge. Backfilled from the topic when the
	// model omits it, so it is always present in a released quiz.
	Hint string `json:"hint"`
}

// AuditInfo records how an accepted quiz passed the relevance audit.
type AuditInfo struct {
	// Score is the auditor's relevance score, 0-100.
	Score float64 `json:"score"`

	// Attempts is how many generation attempts were needed.
	Attempts int `json:"attempts"`

	// Verified is true when the quiz passed the audit (always true on an
	// accepted quiz; a quiz that never passes is not released).
	Verified bool `json:"verified"`
}

// Quiz is a released quiz. Immutable once returned to the caller; the
// grading engine treats it as a pure input.
type Quiz struct {
	Title     string     `json:"materialTitle"`
	Questions []Question `json:"questions"`
	Audit     *AuditInfo `json:"aiAudit,omitempty"`
}

// Question returns the question with the given ID, or nil.
func (q *Quiz) Question(id int) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// IsCorrectOption reports whether option is in the question's answer set.
// Comparison is byte-exact per the contract.
func (q *Question) IsCorrectOption(option string) bool {
	for _, a := range q.Answers {
		if a == option {
			return true
		}
	}
	return false
}
