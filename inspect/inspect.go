package inspect

import (
	"log"

	"http_peek/server"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Inspector is the watch-mode terminal UI. It plugs into the proxy as
// a tap and renders every exchange as it completes.
type Inspector interface {
	Notify(ex server.Exchange)
	Run() error
	Stop()
}

type inspector struct {
	program *tea.Program
}

func New() Inspector {
	lipgloss.SetColorProfile(termenv.TrueColor)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetHeight(2)

	exchangeList := list.New(nil, delegate, 80, 20)
	exchangeList.Title = "Exchanges"
	exchangeList.SetShowStatusBar(false)
	exchangeList.SetFilteringEnabled(false)
	exchangeList.SetShowHelp(false)

	m := &model{
		exchangeList: exchangeList,
		keymap:       defaultKeymap(),
		help:         help.New(),
	}

	return &inspector{
		program: tea.NewProgram(
			m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithFPS(30),
		),
	}
}

// Notify satisfies server.Tap. Called from connection goroutines.
func (i *inspector) Notify(ex server.Exchange) {
	if i.program != nil {
		i.program.Send(exchangeMsg(ex))
	}
}

func (i *inspector) Run() error {
	_, err := i.program.Run()
	if err != nil {
		log.Printf("Cannot close tea: %s \n", err)
	}
	return err
}

func (i *inspector) Stop() {
	if i.program != nil {
		i.program.Kill()
	}
}
