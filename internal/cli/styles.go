package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habits/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(13)

	statusStyles = map[models.HabitStatus]lipgloss.Style{
		models.StatusNew:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StatusFinished:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

func statusBadge(s models.HabitStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return s.String()
	}
	return style.Render(s.String())
}
