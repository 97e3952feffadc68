package achievements

import "time"

// Kind identifies an achievement.
type Kind string

const (
	KindFastLearner    Kind = "fast-learner"
	KindPathfinder     Kind = "pathfinder"
	KindProjectBuilder Kind = "project-builder"
	KindPractice       Kind = "practice-makes-perfect"
	KindPerfectScore   Kind = "perfect-score"
	KindPolyglot       Kind = "polyglot"
)

// AllKinds returns all achievement kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindFastLearner, KindPathfinder, KindProjectBuilder, KindPractice, KindPerfectScore, KindPolyglot}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindFastLearner:
		return "Fast Learner"
	case KindPathfinder:
		return "Pathfinder"
	case KindProjectBuilder:
		return "Project Builder"
	case KindPractice:
		return "Practice Makes Perfect"
	case KindPerfectScore:
		return "Perfect Score"
	case KindPolyglot:
		return "Polyglot"
	default:
		return string(k)
	}
}

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindFastLearner:
		return "⚡"
	case KindPathfinder:
		return "🧭"
	case KindProjectBuilder:
		return "🛠️"
	case KindPractice:
		return "🔁"
	case KindPerfectScore:
		return "💯"
	case KindPolyglot:
		return "🌐"
	default:
		return "✦"
	}
}

// Rarity returns how hard the achievement is to earn.
func (k Kind) Rarity() Rarity {
	switch k {
	case KindProjectBuilder:
		return RarityCommon
	case KindPathfinder, KindPractice:
		return RarityRare
	case KindFastLearner:
		return RarityEpic
	case KindPerfectScore, KindPolyglot:
		return RarityLegendary
	default:
		return RarityCommon
	}
}

// Award is a single earned achievement.
type Award struct {
	Kind      Kind
	Rarity    Rarity
	LearnerID string
	Language  string
	Level     string
	Reason    string
	AwardedAt time.Time
}

// Rarity represents the difficulty tier of an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}
