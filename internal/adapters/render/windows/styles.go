package windows

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	border lipgloss.Style
	cell   lipgloss.Style
	id     lipgloss.Style
	flag   lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")).Padding(0, 1),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cell:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		id:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Padding(0, 1),
		flag:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Padding(0, 1),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
