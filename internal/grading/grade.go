package grading

import "github.com/learncheck/learncheck/internal/quiz"

// Grade computes the correctness status for one question using set-overlap
// semantics. Duplicate selections count once; option texts are compared
// byte for byte. For single-answer questions this degenerates to an exact
// equality check, so partial can only occur in multiple mode.
func Grade(q quiz.Question, selected []string) Status {
	if len(selected) == 0 {
		return StatusWrong
	}

	correct := make(map[string]bool, len(q.Answers))
	for _, a := range q.Answers {
		correct[a] = true
	}

	picked := make(map[string]bool, len(selected))
	var correctPicks, wrongPicks int
	for _, s := range selected {
		if picked[s] {
			continue
		}
		picked[s] = true
		if correct[s] {
			correctPicks++
		} else {
			wrongPicks++
		}
	}

	switch {
	case correctPicks == len(q.Answers) && wrongPicks == 0:
		return StatusCorrect
	case correctPicks == 0:
		return StatusWrong
	default:
		return StatusPartial
	}
}

// credit maps a status to its score weight.
func credit(s Status) float64 {
	switch s {
	case StatusCorrect:
		return 1.0
	case StatusPartial:
		return 0.5
	default:
		return 0
	}
}
