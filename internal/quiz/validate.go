package quiz

import "fmt"

// ValidationError describes a violation of the question contract. The
// generator treats any such violation as a failed generation attempt;
// malformed output is never silently repaired.
type ValidationError struct {
	QuestionID int // 0 when the violation is quiz-level
	Message    string
}

func (e *ValidationError) Error() string {
	if e.QuestionID > 0 {
		return fmt.Sprintf("question %d: %s", e.QuestionID, e.Message)
	}
	return e.Message
}

// Validate checks the full quiz against the structural contract.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return &ValidationError{Message: "quiz has no questions"}
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one question against the structural contract:
// exactly 4 distinct options, a non-empty answer set that is a byte-exact
// subset of the options, and answer cardinality consistent with the mode.
func (question *Question) Validate() error {
	fail := func(format string, args ...any) error {
		return &ValidationError{QuestionID: question.ID, Message: fmt.Sprintf(format, args...)}
	}

	if question.Prompt == "" {
		return fail("prompt is empty")
	}
	if question.Topic == "" {
		return fail("topic is empty")
	}
	if question.Explanation == "" {
		return fail("explanation is empty")
	}

	if len(question.Options) != OptionCount {
		return fail("expected %d options, got %d", OptionCount, len(question.Options))
	}
	seen := make(map[string]bool, len(question.Options))
	for _, opt := range question.Options {
		if opt == "" {
			return fail("option is empty")
		}
		if seen[opt] {
			return fail("duplicate option %q", opt)
		}
		seen[opt] = true
	}

	if len(question.Answers) == 0 {
		return fail("answer set is empty")
	}
	answerSeen := make(map[string]bool, len(question.Answers))
	for _, a := range question.Answers {
		if !seen[a] {
			return fail("answer %q is not one of the options", a)
		}
		if answerSeen[a] {
			return fail("duplicate answer %q", a)
		}
		answerSeen[a] = true
	}

	switch question.Mode {
	case ModeSingle:
		if len(question.Answers) != 1 {
			return fail("single mode requires exactly 1 answer, got %d", len(question.Answers))
		}
	case ModeMultiple:
		if len(question.Answers) < 2 {
			return fail("multiple mode requires at least 2 answers, got %d", len(question.Answers))
		}
	default:
		return fail("mode must be %q or %q", ModeSingle, ModeMultiple)
	}

	return nil
}
