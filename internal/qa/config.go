package qa

// Config controls the behavior of the Answerer.
type Config struct {
	// ChunkSize and ChunkOverlap size the passages, in runes.
	ChunkSize    int
	ChunkOverlap int

	// TopPassages is how many passages are sent with each question.
	TopPassages int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    500,
		ChunkOverlap: 100,
		TopPassages:  4,
		MaxTokens:    1024,
		Temperature:  0.5,
	}
}
