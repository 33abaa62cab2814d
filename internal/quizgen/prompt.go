package quizgen

import (
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/quiz"
)

const systemPrompt = `You are a quiz generation engine for a formative learning check.

Rules:
- Generate exactly %d questions based strictly on the given material. Every question must be answerable from the material alone.
- Each question has exactly 4 distinct options.
- Set 'type' to "single" when exactly one option is correct, or "multiple" when two or more are correct. Mix both types when the material allows.
- The 'answer' array must contain every correct option, copied character for character from 'options'.
- Label each question with a short 'topic' of 1-3 words naming the concept it tests.
- Write a brief 'explanation' for each question grounded in the material.
- Write a one-sentence 'hint' that points at the relevant concept without revealing the answer.
- %s`

// difficultyInstruction encodes the cognitive level requested per tier.
func difficultyInstruction(d quiz.Difficulty) string {
	switch d {
	case quiz.DifficultyEasy:
		return "Difficulty: easy. Ask factual recall questions about definitions and facts stated directly in the material."
	case quiz.DifficultyHard:
		return "Difficulty: hard. Ask analysis questions that require reasoning about cases, trade-offs, or combinations of concepts from the material."
	default:
		return "Difficulty: medium. Ask concept application questions that require applying ideas from the material to a situation."
	}
}

// buildSystemPrompt assembles the generation instruction for a difficulty.
func buildSystemPrompt(d quiz.Difficulty, cfg Config) string {
	return fmt.Sprintf(systemPrompt, cfg.QuestionCount, difficultyInstruction(d))
}

// buildUserMessage wraps the (already truncated) material text.
func buildUserMessage(material string) string {
	var b strings.Builder
	b.WriteString("Material:\n\n")
	b.WriteString(material)
	return b.String()
}

// truncateMaterial applies a silent deterministic prefix cut so the prompt
// stays inside the capability's input limits.
func truncateMaterial(material string, maxChars int) string {
	if maxChars > 0 && len(material) > maxChars {
		return material[:maxChars]
	}
	return material
}
