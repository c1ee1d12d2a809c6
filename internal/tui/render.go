// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/enc-notes/models"
)

const listTitleWidth = 60

// RenderNoteList renders one numbered row per note: title and ID.
func RenderNoteList(notes []models.Note) string {
	if len(notes) == 0 {
		return "No notes found."
	}

	var b strings.Builder
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s %s",
			i+1,
			titleStyle.Render(fitText(singleLine(n.Title), listTitleWidth)),
			idStyle.Render("["+n.ID+"]"),
		)
	}
	return b.String()
}

// RenderNote renders a single note with its full description.
func RenderNote(n models.Note) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Title:"))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(n.Title))
	b.WriteString(" ")
	b.WriteString(idStyle.Render("[" + n.ID + "]"))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(n.Description)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("created %s │ modified %s",
		formatTime(n.CreatedAt), formatTime(n.ModifiedAt))))

	return b.String()
}

// RenderError formats a command failure for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
