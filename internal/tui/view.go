package tui

import (
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/render"
	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	switch m.screen {
	case screenPicker:
		return appStyle.Render(renderPage("SELECT AN X-RAY", m.picker.View(), "enter: upload • q: back"))
	case screenInfo:
		return appStyle.Render(renderBuildInfoWindow(m.appInfo.BuildInfo(), m.appInfo.UserAgent(), m.server))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Spine X-ray Analysis"))
	b.WriteString("  ")
	b.WriteString(m.healthBadge())
	b.WriteString("\n\n")

	zone := dropZoneStyle
	if m.dropActive {
		zone = dropZoneActiveStyle
	}
	b.WriteString(zone.Render(m.dropZone.View()))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Analyzing...\n")
	}

	if m.errorVisible {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errorText))
		b.WriteString("\n")
		if m.hint != "" {
			b.WriteString(hintStyle.Render(m.hint))
			b.WriteString("\n")
		}
	}

	if m.resultsVisible {
		b.WriteString("\n")
		b.WriteString(m.viewResults())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))

	return appStyle.Render(b.String())
}

func (m model) viewResults() string {
	var b strings.Builder

	cards := make([]string, 0, len(m.cards))
	for _, c := range m.cards {
		body := c.Label + "\n" + cardValueStyle.Render(c.Value)
		if c.Detail != "" {
			body += "\n" + cardDetailStyle.Render(c.Detail)
		}
		cards = append(cards, cardStyle.Render(body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	if len(m.rows) > 0 {
		b.WriteString(m.segments.View())
		b.WriteString("\n")
	}

	if m.lastFile.Name != "" {
		b.WriteString(helpStyle.Render("File: " + fitText(m.lastFile.Name, 60)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Annotated image: " + render.Preview(m.imageSource)))
	b.WriteString("\n")

	return b.String()
}

func (m model) help() string {
	if m.dropZone.Focused() {
		return helpLine(keys.enter, keys.back)
	}
	if m.resultsVisible {
		return helpLine(keys.focus, keys.picker, keys.save, keys.copy, keys.info, keys.quit)
	}
	return helpLine(keys.focus, keys.picker, keys.info, keys.quit)
}
