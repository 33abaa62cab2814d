// Package grading scores learner responses against a quiz and classifies
// each question by correctness and self-reported confidence. Every function
// in this package is pure: it reads the quiz and the response, and never
// mutates either.
package grading

// Status is the three-valued correctness of one graded question.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPartial Status = "partial"
	StatusWrong   Status = "wrong"
)

// Confidence is the learner's self-reported certainty for one question.
// Only two levels exist.
type Confidence float64

const (
	ConfidenceUnsure    Confidence = 0.5
	ConfidenceConfident Confidence = 1.0
)

// Response holds a learner's answers for one quiz attempt, keyed by
// question ID. Missing entries mean "no answer" and "unsure" respectively.
type Response struct {
	Selected   map[int][]string   `json:"answers"`
	Confidence map[int]Confidence `json:"confidences"`
}

// SelectedFor returns the learner's selected options for a question,
// or nil when the question was left unanswered.
func (r Response) SelectedFor(id int) []string {
	return r.Selected[id]
}

// ConfidenceFor returns the reported confidence for a question,
// defaulting to unsure when unreported or out of range.
func (r Response) ConfidenceFor(id int) Confidence {
	if c, ok := r.Confidence[id]; ok && c == ConfidenceConfident {
		return ConfidenceConfident
	}
	return ConfidenceUnsure
}
