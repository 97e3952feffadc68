package tutor

import "time"

// Config holds tutor generation settings.
type Config struct {
	MaxTokens       int
	LessonMaxTokens int
	Temperature     float64

	// Timeout bounds one provider call. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns defaults for chat answers and lesson writing.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       768,
		LessonMaxTokens: 1536,
		Temperature:     0.4,
		Timeout:         30 * time.Second,
	}
}
