package grading

import (
	"strings"

	"github.com/learncheck/learncheck/internal/quiz"
)

// Bucket is a metacognitive classification cell derived from
// (status, confidence).
type Bucket string

const (
	BucketMastered              Bucket = "mastered"
	BucketLuckyGuess            Bucket = "lucky-guess"
	BucketNeedsCompletion       Bucket = "needs-completion"
	BucketCriticalMisconception Bucket = "critical-misconception"
	BucketSelfAwareGap          Bucket = "self-aware-gap"
)

// bucketFor implements the classification table. Partial grades land in
// needs-completion regardless of confidence.
func bucketFor(status Status, conf Confidence) Bucket {
	switch status {
	case StatusCorrect:
		if conf == ConfidenceConfident {
			return BucketMastered
		}
		return BucketLuckyGuess
	case StatusPartial:
		return BucketNeedsCompletion
	default:
		if conf == ConfidenceConfident {
			return BucketCriticalMisconception
		}
		return BucketSelfAwareGap
	}
}

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	QuestionID int        `json:"questionId"`
	Topic      string     `json:"topic"`
	Status     Status     `json:"status"`
	Confidence Confidence `json:"confidence"`
	Bucket     Bucket     `json:"bucket"`
}

// RemediationEntry is one item in the priority-ordered review list.
type RemediationEntry struct {
	QuestionID     int      `json:"questionId"`
	Question       string   `json:"question"`
	YourAnswer     string   `json:"yourAnswer"`
	CorrectAnswers []string `json:"correctAnswer"`
	Explanation    string   `json:"explanation"`
}

// Report is the full grading and classification output for one attempt.
type Report struct {
	Results     []QuestionResult   `json:"results"`
	Buckets     map[Bucket][]int   `json:"buckets"`
	Summary     Summary            `json:"summary"`
	Remediation []RemediationEntry `json:"remediation"`
}

// Classify grades every question, buckets it, and builds the remediation
// list: wrong questions first, then partial, then correct-but-unsure, each
// group in quiz order. Mastered questions never appear in remediation.
func Classify(qz *quiz.Quiz, resp Response) Report {
	report := Report{
		Results: make([]QuestionResult, 0, len(qz.Questions)),
		Buckets: make(map[Bucket][]int),
		Summary: Aggregate(qz, resp),
	}

	var wrong, partial, unsureCorrect []RemediationEntry
	for _, q := range qz.Questions {
		selected := resp.SelectedFor(q.ID)
		status := Grade(q, selected)
		conf := resp.ConfidenceFor(q.ID)
		bucket := bucketFor(status, conf)

		report.Results = append(report.Results, QuestionResult{
			QuestionID: q.ID,
			Topic:      q.Topic,
			Status:     status,
			Confidence: conf,
			Bucket:     bucket,
		})
		report.Buckets[bucket] = append(report.Buckets[bucket], q.ID)

		entry := RemediationEntry{
			QuestionID:     q.ID,
			Question:       q.Prompt,
			YourAnswer:     formatAnswer(selected),
			CorrectAnswers: q.Answers,
			Explanation:    q.Explanation,
		}
		switch {
		case status == StatusWrong:
			wrong = append(wrong, entry)
		case status == StatusPartial:
			partial = append(partial, entry)
		case conf == ConfidenceUnsure:
			unsureCorrect = append(unsureCorrect, entry)
		}
	}

	report.Remediation = append(report.Remediation, wrong...)
	report.Remediation = append(report.Remediation, partial...)
	report.Remediation = append(report.Remediation, unsureCorrect...)
	return report
}

func formatAnswer(selected []string) string {
	if len(selected) == 0 {
		return "(no answer)"
	}
	return strings.Join(selected, ", ")
}
