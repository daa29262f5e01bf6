// Package tui is the terminal front end for the reversible debugger: a
// bubbletea program that renders one machine snapshot at a time and maps
// keystrokes onto internal/debugger's cursor movement.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chip8deck/chip8deck/internal/applog"
	"github.com/chip8deck/chip8deck/internal/debugger"
)

// disasmRadius is how many instructions above and below PC the
// disassembly window shows.
const disasmRadius = 15

// bigStep is how many instructions N/P move at once.
const bigStep = 10

// model is the bubbletea Model for the debugger view.
type model struct {
	dbg    *debugger.Debugger
	logger *applog.Logger
	status string
	quit   bool
}

// Run starts the bubbletea program and blocks until the user exits.
func Run(dbg *debugger.Debugger, logger *applog.Logger) error {
	m := model{dbg: dbg, logger: logger}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit

	case "n", " ", "enter", "right":
		m.status = ""
		if err := m.dbg.StepForward(); err != nil {
			m.status = fmt.Sprintf("halted: %s", err)
			m.logger.Warn("step failed", "err", err)
		}

	case "N":
		m.status = ""
		if err := m.dbg.StepsForward(bigStep); err != nil {
			m.status = fmt.Sprintf("halted: %s", err)
			m.logger.Warn("step failed", "err", err)
		}

	case "p", "backspace", "left":
		m.status = ""
		if !m.dbg.StepBack() {
			m.status = "already at the start"
		}

	case "P":
		m.status = ""
		m.dbg.StepsBack(bigStep)

	case "d":
		m.dbg.ToggleDiff()
	}

	return m, nil
}

func (m model) View() string {
	return render(m)
}
