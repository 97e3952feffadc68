package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/devpath/internal/achievements"
	"github.com/abhisek/devpath/internal/ceremony"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(12)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// States
var (
	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Current = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// HonorStyle returns the badge style for a certificate honor.
func HonorStyle(h ceremony.Honor) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch h {
	case ceremony.HonorHighestDistinction:
		return base.Foreground(lipgloss.Color("#FBBF24"))
	case ceremony.HonorDistinction:
		return base.Foreground(lipgloss.Color("#A855F7"))
	case ceremony.HonorMerit:
		return base.Foreground(Secondary)
	default:
		return base.Foreground(Text)
	}
}

// RarityStyle returns the style for an achievement of the given rarity.
func RarityStyle(r achievements.Rarity) lipgloss.Style {
	switch r {
	case achievements.RarityLegendary:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24")).Bold(true)
	case achievements.RarityEpic:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7")).Bold(true)
	case achievements.RarityRare:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	default:
		return lipgloss.NewStyle().Foreground(Text)
	}
}
