package inspect

import (
	"fmt"
	"strconv"

	"http_peek/internal/status"
	"http_peek/server"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ColorPrimary   = "#7D56F4"
	ColorSecondary = "#04B575"
	ColorGray      = "#888888"
	ColorDarkGray  = "#666666"
	ColorWhite     = "#FAFAFA"
	ColorError     = "#FF0000"
	ColorWarning   = "#FFA500"
)

type exchangeItem struct {
	ex server.Exchange
}

func (i exchangeItem) FilterValue() string {
	return i.ex.Request.Method() + " " + i.ex.Request.Path()
}

func (i exchangeItem) Title() string {
	line := fmt.Sprintf("%s %s", i.ex.Request.Method(), i.ex.Request.Path())
	switch {
	case i.ex.Err != nil:
		return line + "  [failed]"
	case i.ex.Response != nil && i.ex.Response.Code() > 0:
		code := i.ex.Response.Code()
		return fmt.Sprintf("%s  %d %s", line, code, status.Text(code))
	default:
		return line + "  [no response]"
	}
}

func (i exchangeItem) Description() string {
	return fmt.Sprintf("%s from %s", i.ex.Tag, i.ex.Remote)
}

type exchangeMsg server.Exchange

type keymap struct {
	quit   key.Binding
	detail key.Binding
	back   key.Binding
	clear  key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "inspect"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
	}
}

type model struct {
	keymap        keymap
	help          help.Model
	exchangeList  list.Model
	showingDetail bool
	detail        server.Exchange
	quitting      bool
	width         int
	height        int
}

func (m *model) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exchangeMsg:
		cmd := m.exchangeList.InsertItem(0, exchangeItem{ex: server.Exchange(msg)})
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.exchangeList.SetWidth(msg.Width)
		m.exchangeList.SetHeight(msg.Height - 4)
		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.showingDetail {
			return m.detailUpdate(msg)
		}
		return m.listUpdate(msg)
	}

	return m, nil
}

func (m *model) listUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.clear):
		m.exchangeList.SetItems(nil)
		return m, nil
	case key.Matches(msg, m.keymap.detail):
		if item, ok := m.exchangeList.SelectedItem().(exchangeItem); ok {
			m.showingDetail = true
			m.detail = item.ex
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.exchangeList, cmd = m.exchangeList.Update(msg)
	return m, cmd
}

func (m *model) detailUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.back):
		m.showingDetail = false
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	if m.showingDetail {
		return m.detailView()
	}

	return m.listView()
}

func statusColor(ex server.Exchange) string {
	if ex.Err != nil || ex.Response == nil {
		return ColorError
	}
	code := ex.Response.Code()
	switch {
	case code >= 500:
		return ColorError
	case code >= 400:
		return ColorWarning
	case code >= 300:
		return ColorPrimary
	case code >= 200:
		return ColorSecondary
	default:
		return ColorGray
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength < 4 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}

func bodySize(n int) string {
	if n < 1024 {
		return strconv.Itoa(n) + " B"
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}
