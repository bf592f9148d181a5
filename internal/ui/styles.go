package ui

import (
	"github.com/nconklindev/stockcell/internal/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	accentColor = lipgloss.Color("#FF8C42")
	softColor   = lipgloss.Color("#FFB84D")
	mutedColor  = lipgloss.Color("#6B7280")
	errorColor  = lipgloss.Color("#FF4757")
	whiteColor  = lipgloss.Color("#FFFFFF")
)

var zoneColors = map[types.Zone]lipgloss.Color{
	types.ZoneA:       lipgloss.Color("#8B5CF6"),
	types.ZoneB:       lipgloss.Color("#0EA5E9"),
	types.ZoneC:       lipgloss.Color("#F97316"),
	types.ZoneD:       lipgloss.Color("#EC4899"),
	types.ZoneUnknown: mutedColor,
}

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(softColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(whiteColor).
			Background(accentColor).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 2)

	CellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	NotFoundStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2).
			Align(lipgloss.Center)
)

// zone returns the render-safe form of a stored zone.
func zone(z types.Zone) types.Zone {
	return types.ParseZone(string(z))
}

func ZoneBadge(z types.Zone) string {
	z = zone(z)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(whiteColor).
		Background(zoneColors[z]).
		Padding(0, 1).
		Render("Zone " + string(z))
}

func CardStyle(z types.Zone) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(zoneColors[zone(z)]).
		Padding(1, 2)
}

func ToastStyle(s types.Severity) lipgloss.Style {
	color := softColor
	if s == types.SeverityError {
		color = errorColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}
