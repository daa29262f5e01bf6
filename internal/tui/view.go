package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chip8deck/chip8deck/internal/chip8"
	"github.com/chip8deck/chip8deck/internal/debugger"
)

// render builds the full snapshot view: framebuffer, registers, stack, and
// a disassembly window centered on PC, optionally with diff highlighting
// against the previous snapshot.
func render(m model) string {
	cur := m.dbg.Peek()
	prev := m.dbg.PeekPrev()

	var diff debugger.RegisterDiff
	if m.dbg.Diff() {
		diff = debugger.DiffSnapshots(cur, prev)
	}

	title := titleStyle.Render(fmt.Sprintf("chippy — snapshot %d/%d", m.dbg.Cursor()+1, m.dbg.Len()))
	if m.dbg.Diff() {
		title += labelStyle.Render("  [diff]")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		screenBorder.Render(cur.Screen.String()),
		renderRegisters(cur, diff),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		renderState(cur, diff),
		renderDisassembly(cur),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	footer := footerStyle.Render(
		"n/space/enter/→ step   N step×10   p/backspace/← back   P back×10   d diff   q quit",
	)
	if m.status != "" {
		footer = errorStyle.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

func renderRegisters(m *chip8.Machine, diff debugger.RegisterDiff) string {
	var rows [4]string
	for row := 0; row < 4; row++ {
		var cells []string
		for col := 0; col < 4; col++ {
			i := row*4 + col
			reg := chip8.Register(i)
			cells = append(cells, regStyle(diff.V[i]).Render(fmt.Sprintf("%s=%02X", reg, m.V[i])))
		}
		rows[row] = strings.Join(cells, " ")
	}
	return strings.Join(rows[:], "\n")
}

func renderState(m *chip8.Machine, diff debugger.RegisterDiff) string {
	lines := []string{
		regStyle(diff.PC).Render(fmt.Sprintf("PC  %s", chip8.Address(m.PC))),
		regStyle(diff.I).Render(fmt.Sprintf("I   %s", chip8.Address(m.I))),
		regStyle(diff.SP).Render(fmt.Sprintf("SP  %d", m.SP)),
		regStyle(diff.Delay).Render(fmt.Sprintf("DT  %d", m.Delay)),
		regStyle(diff.Sound).Render(fmt.Sprintf("ST  %d", m.Sound)),
		labelStyle.Render(fmt.Sprintf("stack %v", m.CallStack())),
	}
	return strings.Join(lines, "\n")
}

func renderDisassembly(m *chip8.Machine) string {
	window := chip8.DisassemblyWindow(m.Memory[:], m.PC, disasmRadius)
	var b strings.Builder
	for _, line := range window {
		text := line.String()
		if line.Valid && line.Addr == m.PC {
			text = cursorLineStyle.Render("> " + text)
		} else {
			text = "  " + text
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
