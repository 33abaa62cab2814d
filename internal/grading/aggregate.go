package grading

import "github.com/learncheck/learncheck/internal/quiz"

// TopicTally counts questions per topic. Correct increments only on an
// exact correct grade; partial credit never counts toward topic mastery.
type TopicTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Summary is the aggregate view of one graded attempt.
type Summary struct {
	ScorePercent         float64               `json:"scorePercentage"`
	AvgConfidencePercent float64               `json:"avgConfidencePercentage"`
	PerTopic             map[string]TopicTally `json:"perTopic"`
}

// Aggregate folds per-question grades and confidences into an overall
// score, an average confidence, and per-topic tallies. An empty quiz
// yields zero percentages, never NaN.
func Aggregate(qz *quiz.Quiz, resp Response) Summary {
	sum := Summary{PerTopic: make(map[string]TopicTally)}

	n := len(qz.Questions)
	if n == 0 {
		return sum
	}

	var points, confTotal float64
	for _, q := range qz.Questions {
		status := Grade(q, resp.SelectedFor(q.ID))
		points += credit(status)
		confTotal += float64(resp.ConfidenceFor(q.ID))

		tally := sum.PerTopic[q.Topic]
		tally.Total++
		if status == StatusCorrect {
			tally.Correct++
		}
		sum.PerTopic[q.Topic] = tally
	}

	sum.ScorePercent = 100 * points / float64(n)
	sum.AvgConfidencePercent = 100 * confTotal / float64(n)
	return sum
}
