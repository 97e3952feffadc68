package curriculum

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Level is the difficulty band of a learning path.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns all levels in progression order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel converts user input into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q (want beginner, intermediate or advanced)", s)
	}
	return l, nil
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// Next returns the level that follows l. Advanced has no successor.
func (l Level) Next() (Level, bool) {
	switch l {
	case LevelBeginner:
		return LevelIntermediate, true
	case LevelIntermediate:
		return LevelAdvanced, true
	default:
		return "", false
	}
}

// DisplayName returns a human-readable name for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return string(l)
	}
}

func (l Level) rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 3
	}
}

// NormalizeLanguage lowercases and trims a language key.
func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// LanguageDisplayName returns a human-readable name for a language key.
func LanguageDisplayName(language string) string {
	switch NormalizeLanguage(language) {
	case "javascript":
		return "JavaScript"
	case "python":
		return "Python"
	case "":
		return ""
	default:
		l := NormalizeLanguage(language)
		r, size := utf8.DecodeRuneInString(l)
		return string(unicode.ToUpper(r)) + l[size:]
	}
}
