// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(14)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// renderRecipes draws summaries as a table. The author column is shown only
// for the global listing.
func renderRecipes(recipes []models.RecipeSummary, withAuthor bool) string {
	headers := []string{"ID", "Título", "Descripción"}
	if withAuthor {
		headers = append(headers, "Autor")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range recipes {
		row := []string{fmt.Sprint(r.ID), r.Title, r.Description}
		if withAuthor {
			row = append(row, r.Author)
		}
		t.Row(row...)
	}

	return t.Render()
}

// renderRecipe draws one recipe as a bordered card.
func renderRecipe(r models.Recipe) string {
	lines := []string{
		titleStyle.Render(r.Title),
		"",
		labelStyle.Render("ID") + fmt.Sprint(r.ID),
		labelStyle.Render("Autor (id)") + fmt.Sprint(r.OwnerID),
		labelStyle.Render("Creada") + r.CreatedAt.Format("2006-01-02 15:04"),
	}
	if r.Description != "" {
		lines = append(lines, labelStyle.Render("Descripción")+r.Description)
	}
	lines = append(lines,
		labelStyle.Render("Ingredientes")+r.Ingredients,
		labelStyle.Render("Instrucciones")+r.Instructions,
	)

	return cardStyle.Render(strings.Join(lines, "\n"))
}
