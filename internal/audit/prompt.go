package audit

import (
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/quiz"
)

const systemPrompt = `You are a quality auditor for AI-generated quizzes.

Judge the quiz against the material:
- Every question must be answerable strictly from the given material, without outside knowledge.
- The marked answers must be correct according to the material.
- Options must be internally consistent: exactly one correct option for "single" questions, all listed answers correct for "multiple" questions.

Score relevance 0-100. Set pass to true only when every question meets the rules above. Give a short reason.`

// buildUserMessage embeds the material and a serialized form of the quiz.
func buildUserMessage(material string, q *quiz.Quiz) string {
	var b strings.Builder

	b.WriteString("Material:\n\n")
	b.WriteString(material)
	b.WriteString("\n\nQuiz under audit:\n\n")
	b.WriteString(serializeQuiz(q))

	return b.String()
}

// serializeQuiz renders the quiz in a compact readable form for the auditor.
func serializeQuiz(q *quiz.Quiz) string {
	var b strings.Builder
	for _, question := range q.Questions {
		fmt.Fprintf(&b, "Q%d [%s] (%s): %s\n", question.ID, question.Mode, question.Topic, question.Prompt)
		for i, opt := range question.Options {
			marker := " "
			if question.IsCorrectOption(opt) {
				marker = "*"
			}
			fmt.Fprintf(&b, "  %s %c) %s\n", marker, 'A'+i, opt)
		}
		fmt.Fprintf(&b, "  Explanation: %s\n\n", question.Explanation)
	}
	return strings.TrimRight(b.String(), "\n")
}
