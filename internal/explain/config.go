package explain

// Purpose labels explanation requests in the LLM event log.
const Purpose = "explain"

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.3,
	}
}
