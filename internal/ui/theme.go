package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SheRages theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconScenario = "🎭"
	IconSparkle  = "✨"
	IconBadge    = "🏅"
	IconTrophy   = "🏆"
	IconFlame    = "🔥"
	IconBolt     = "⚡"
	IconHeart    = "❤️"
	IconBell     = "🔔"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconFeed     = "💬"
	IconLog      = "📋"
	IconSync     = "🔄"
)

var (
	cPrimary = lipgloss.Color("162") // deep pink
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// DeltaText colors a choice outcome by its point swing.
func DeltaText(delta int) string {
	switch {
	case delta >= 2:
		return Good.Render(fmt.Sprintf("+%d", delta))
	case delta > 0:
		return H2.Render(fmt.Sprintf("+%d", delta))
	case delta == 0:
		return Muted.Render("+0")
	default:
		return Bad.Render(fmt.Sprintf("%d", delta))
	}
}

// ProgressBar renders an XP bar, e.g. [████░░░░░░] 40/100.
func ProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := current * width / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", Gold.Render(bar), current, total)
}

// StreakText renders the streak counter, lit when it is alive.
func StreakText(days int) string {
	if days <= 0 {
		return Muted.Render("no streak")
	}
	return Warn.Render(fmt.Sprintf("%s %d day streak", IconFlame, days))
}
