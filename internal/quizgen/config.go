package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// QuestionCount is the number of questions requested per quiz.
	QuestionCount int

	// MaxMaterialChars bounds the material text included in the prompt.
	// Longer material is cut to this prefix, silently.
	MaxMaterialChars int

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the canonical configuration: 3 questions, material
// capped at 8000 characters.
func DefaultConfig() Config {
	return Config{
		QuestionCount:    3,
		MaxMaterialChars: 8000,
		MaxTokens:        2048,
		Temperature:      0.7,
	}
}
