package grading

import (
	"testing"

	"github.com/learncheck/learncheck/internal/quiz"
)

// threeQuestionQuiz has one single-answer question per row of the
// classification table exercised below.
func threeQuestionQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Title: "Networking Basics",
		Questions: []quiz.Question{
			{
				ID: 1, Mode: quiz.ModeSingle, Topic: "DNS",
				Prompt:      "Which record maps a name to an IPv4 address?",
				Options:     []string{"A", "AAAA", "MX", "TXT"},
				Answers:     []string{"A"},
				Explanation: "A records hold IPv4 addresses.",
			},
			{
				ID: 2, Mode: quiz.ModeMultiple, Topic: "TCP",
				Prompt:      "Which flags appear in the three-way handshake?",
				Options:     []string{"SYN", "ACK", "FIN", "RST"},
				Answers:     []string{"SYN", "ACK"},
				Explanation: "SYN and SYN-ACK and ACK complete the handshake.",
			},
			{
				ID: 3, Mode: quiz.ModeSingle, Topic: "DNS",
				Prompt:      "Which port does DNS use by default?",
				Options:     []string{"53", "80", "443", "25"},
				Answers:     []string{"53"},
				Explanation: "DNS listens on port 53.",
			},
		},
	}
}

func TestAggregate_PartialCreditScore(t *testing.T) {
	qz := threeQuestionQuiz()
	resp := Response{
		Selected: map[int][]string{
			1: {"A"},   // correct
			2: {"SYN"}, // partial
			3: {"80"},  // wrong
		},
		Confidence: map[int]Confidence{
			1: ConfidenceConfident,
			2: ConfidenceUnsure,
			3: ConfidenceConfident,
		},
	}

	sum := Aggregate(qz, resp)
	if sum.ScorePercent != 50 {
		t.Errorf("score = %v, want 50", sum.ScorePercent)
	}

	wantConf := 100 * (1.0 + 0.5 + 1.0) / 3
	if diff := sum.AvgConfidencePercent - wantConf; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg confidence = %v, want %v", sum.AvgConfidencePercent, wantConf)
	}

	dns := sum.PerTopic["DNS"]
	if dns.Correct != 1 || dns.Total != 2 {
		t.Errorf("DNS tally = %+v, want {1 2}", dns)
	}
	tcp := sum.PerTopic["TCP"]
	if tcp.Correct != 0 || tcp.Total != 1 {
		t.Errorf("TCP tally = %+v, want {0 1}; partial must not count as mastery", tcp)
	}
}

func TestAggregate_EmptyQuizIsZeroNotNaN(t *testing.T) {
	sum := Aggregate(&quiz.Quiz{}, Response{})
	if sum.ScorePercent != 0 || sum.AvgConfidencePercent != 0 {
		t.Errorf("empty quiz percentages = %v, %v, want 0, 0",
			sum.ScorePercent, sum.AvgConfidencePercent)
	}
}

func TestAggregate_ConfidenceDefaultsToUnsure(t *testing.T) {
	qz := threeQuestionQuiz()
	resp := Response{
		Selected: map[int][]string{1: {"A"}, 2: {"SYN", "ACK"}, 3: {"53"}},
		// no confidence reported for any question
	}

	sum := Aggregate(qz, resp)
	if sum.AvgConfidencePercent != 50 {
		t.Errorf("avg confidence = %v, want 50 for all-unreported", sum.AvgConfidencePercent)
	}
}

func TestClassify_Buckets(t *testing.T) {
	cases := []struct {
		name   string
		status Status
		conf   Confidence
		want   Bucket
	}{
		{"correct confident", StatusCorrect, ConfidenceConfident, BucketMastered},
		{"correct unsure", StatusCorrect, ConfidenceUnsure, BucketLuckyGuess},
		{"partial confident", StatusPartial, ConfidenceConfident, BucketNeedsCompletion},
		{"partial unsure", StatusPartial, ConfidenceUnsure, BucketNeedsCompletion},
		{"wrong confident", StatusWrong, ConfidenceConfident, BucketCriticalMisconception},
		{"wrong unsure", StatusWrong, ConfidenceUnsure, BucketSelfAwareGap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bucketFor(tc.status, tc.conf); got != tc.want {
				t.Errorf("bucketFor(%s, %v) = %q, want %q", tc.status, tc.conf, got, tc.want)
			}
		})
	}
}

func TestClassify_RemediationOrder(t *testing.T) {
	qz := threeQuestionQuiz()
	resp := Response{
		Selected: map[int][]string{
			1: {"A"},   // correct, confident -> mastered, excluded
			2: {"SYN"}, // partial -> second in remediation
			3: {"80"},  // wrong -> first in remediation
		},
		Confidence: map[int]Confidence{
			1: ConfidenceConfident,
			2: ConfidenceUnsure,
			3: ConfidenceConfident,
		},
	}

	report := Classify(qz, resp)

	if len(report.Remediation) != 2 {
		t.Fatalf("remediation length = %d, want 2", len(report.Remediation))
	}
	if report.Remediation[0].QuestionID != 3 {
		t.Errorf("first remediation = question %d, want 3 (wrong before partial)",
			report.Remediation[0].QuestionID)
	}
	if report.Remediation[1].QuestionID != 2 {
		t.Errorf("second remediation = question %d, want 2", report.Remediation[1].QuestionID)
	}

	first := report.Remediation[0]
	if first.Question == "" || first.Explanation == "" {
		t.Error("remediation entry must carry question text and explanation")
	}
	if first.YourAnswer != "80" {
		t.Errorf("formatted answer = %q, want %q", first.YourAnswer, "80")
	}
	if len(first.CorrectAnswers) != 1 || first.CorrectAnswers[0] != "53" {
		t.Errorf("correct answers = %v, want [53]", first.CorrectAnswers)
	}

	if got := report.Buckets[BucketMastered]; len(got) != 1 || got[0] != 1 {
		t.Errorf("mastered bucket = %v, want [1]", got)
	}
	if report.Summary.ScorePercent != 50 {
		t.Errorf("summary score = %v, want 50", report.Summary.ScorePercent)
	}
}

func TestClassify_UnsureCorrectIsRemediatedLast(t *testing.T) {
	qz := threeQuestionQuiz()
	resp := Response{
		Selected: map[int][]string{
			1: {"A"},  // correct but unsure -> lucky guess, last in remediation
			2: nil,    // wrong (no answer)
			3: {"53"}, // correct confident -> mastered, excluded
		},
		Confidence: map[int]Confidence{
			1: ConfidenceUnsure,
			3: ConfidenceConfident,
		},
	}

	report := Classify(qz, resp)

	if len(report.Remediation) != 2 {
		t.Fatalf("remediation length = %d, want 2", len(report.Remediation))
	}
	if report.Remediation[0].QuestionID != 2 || report.Remediation[1].QuestionID != 1 {
		t.Errorf("remediation order = [%d %d], want [2 1]",
			report.Remediation[0].QuestionID, report.Remediation[1].QuestionID)
	}
	if report.Remediation[0].YourAnswer != "(no answer)" {
		t.Errorf("empty selection formatted as %q", report.Remediation[0].YourAnswer)
	}
	if got := report.Buckets[BucketSelfAwareGap]; len(got) != 1 || got[0] != 2 {
		t.Errorf("self-aware-gap bucket = %v, want [2]", got)
	}
}
