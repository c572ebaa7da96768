package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated set; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. The detailed
	// summary alone runs to 500 words.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxInputChars caps the study material sent to the model, in runes.
	// Longer material is truncated. Zero disables the cap.
	MaxInputChars int

	// Regenerations is how many times a set failing a retryable
	// validator is requested again.
	Regenerations int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceValidator{},
		},
		MaxTokens:     4096,
		Temperature:   0.4,
		MaxInputChars: 30000,
		Regenerations: 1,
	}
}
