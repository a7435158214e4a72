package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) listView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)).
		PaddingTop(1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGray)).
		Italic(true)

	var b strings.Builder

	b.WriteString(titleStyle.Render("HTTP PEEK"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Live traffic between client and upstream"))
	b.WriteString("\n\n")

	if len(m.exchangeList.Items()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDarkGray)).
			Italic(true).
			MarginLeft(2)
		b.WriteString(emptyStyle.Render("Waiting for traffic..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.exchangeList.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keymap.detail,
		m.keymap.clear,
		m.keymap.quit,
	}))

	return b.String()
}

func (m *model) detailView() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)).
		PaddingTop(1)

	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGray))

	blockStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1).
		Width(responsiveWidth(m.width, 4, 40, 100))

	statusStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(statusColor(m.detail)))

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Exchange %s", m.detail.Tag)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("from " + m.detail.Remote))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(exchangeItem{ex: m.detail}.Title()))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Request"))
	b.WriteString("\n")
	b.WriteString(blockStyle.Render(renderHeaders(m.detail.Request.HeaderBlock(), len(m.detail.Request.Body()))))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Response"))
	b.WriteString("\n")
	if m.detail.Response != nil && m.detail.Response.FirstLine() != "" {
		b.WriteString(blockStyle.Render(renderHeaders(m.detail.Response.HeaderBlock(), len(m.detail.Response.Body()))))
	} else if m.detail.Err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(blockStyle.Render(errStyle.Render(m.detail.Err.Error())))
	} else {
		b.WriteString(blockStyle.Render(metaStyle.Render("(none)")))
	}
	b.WriteString("\n\n")

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDarkGray)).
		Italic(true)
	b.WriteString(footerStyle.Render("Press 'esc' to go back, 'q' to quit"))

	return b.String()
}

func renderHeaders(block string, bodyLen int) string {
	out := strings.TrimRight(block, "\r\n")
	if bodyLen > 0 {
		out += "\n\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDarkGray)).
			Italic(true).
			Render(fmt.Sprintf("+ %s of body", bodySize(bodyLen)))
	}
	return out
}

func responsiveWidth(screenWidth, padding, minWidth, maxWidth int) int {
	width := screenWidth - padding
	if width > maxWidth {
		width = maxWidth
	}
	if width < minWidth {
		width = minWidth
	}
	return width
}
