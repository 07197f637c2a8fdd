package ui

import "github.com/charmbracelet/lipgloss"

// Qualitative series palette, https://colorbrewer2.org Dark2.
var seriesColors = []lipgloss.Color{
	lipgloss.Color("#1b9e77"),
	lipgloss.Color("#d95f02"),
	lipgloss.Color("#7570b3"),
	lipgloss.Color("#e7298a"),
	lipgloss.Color("#66a61e"),
	lipgloss.Color("#e6ab02"),
	lipgloss.Color("#a6761d"),
	lipgloss.Color("#666666"),
}

var (
	styleHeader      = lipgloss.NewStyle().Bold(true)
	styleHeaderValue = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleAxis        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleSeriesLabel = lipgloss.NewStyle().Bold(true)
	styleFooter      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleFooterKey   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	stylePaused      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	styleHelpBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesColors[i%len(seriesColors)])
}
