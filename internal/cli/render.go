package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

func renderHabits(habits []models.Habit) string {
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, []string{
			strconv.Itoa(h.ID),
			h.Name,
			statusBadge(h.Status),
			h.CreatedAt.Format(constants.DateTimeFormat),
			h.Description,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "STATUS", "CREATED", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func renderHabit(h models.Habit) string {
	lines := []string{
		labelStyle.Render("ID") + strconv.Itoa(h.ID),
		labelStyle.Render("Name") + h.Name,
		labelStyle.Render("Status") + statusBadge(h.Status),
		labelStyle.Render("Created") + h.CreatedAt.Format(constants.DateTimeFormat),
	}
	if h.Description != "" {
		lines = append(lines, labelStyle.Render("Description")+h.Description)
	}
	return strings.Join(lines, "\n")
}
