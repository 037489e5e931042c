package ui

import "github.com/charmbracelet/lipgloss"

// Banner palette, aligned with the success/accent colors of the ANSI themes.
var (
	bannerBorderColor = lipgloss.Color("#9ece6a")
	bannerTitleColor  = lipgloss.Color("#9ece6a")
	bannerPathColor   = lipgloss.Color("#4488FF")
	bannerDimColor    = lipgloss.Color("#666666")
)

// SummaryBoxStyle returns the lipgloss style that frames the completion
// summary: a rounded box with light padding. Border color follows the success
// palette, or the terminal default when colors are disabled.
func SummaryBoxStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if GetCurrentTheme().Name == "none" {
		return style.BorderForeground(lipgloss.NoColor{})
	}
	return style.BorderForeground(bannerBorderColor)
}

// SummaryTitleStyle returns the style for the summary headline.
func SummaryTitleStyle() lipgloss.Style {
	if GetCurrentTheme().Name == "none" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(bannerTitleColor)
}

// SummaryPathStyle returns the style for filesystem paths in the summary.
func SummaryPathStyle() lipgloss.Style {
	if GetCurrentTheme().Name == "none" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(bannerPathColor)
}

// SummaryDimStyle returns the style for de-emphasized summary rows, such as
// artifacts a step chose not to produce.
func SummaryDimStyle() lipgloss.Style {
	if GetCurrentTheme().Name == "none" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(bannerDimColor)
}
