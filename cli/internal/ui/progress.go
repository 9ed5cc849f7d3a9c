// Package ui provides the in-flight progress view shown while a slow remote
// call is running in interactive mode.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

type opDoneMsg struct {
	err error
}

type progressModel struct {
	label string
	sw    stopwatch.Model
	done  <-chan error
	err   error
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(
		m.sw.Init(),
		func() tea.Msg {
			return opDoneMsg{err: <-m.done}
		},
	)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(opDoneMsg); ok {
		m.err = done.err
		return m, tea.Quit
	}

	// Key presses are ignored: a command either completes or fails outright,
	// there is no mid-command cancellation.
	var cmd tea.Cmd
	m.sw, cmd = m.sw.Update(msg)
	return m, cmd
}

func (m progressModel) View() string {
	return labelStyle.Render(fmt.Sprintf("%s %s", m.label, m.sw.View()))
}

// RunWithProgress executes fn while displaying a label with elapsed time.
// fn runs exactly once. When stdout is not a terminal, it runs directly with
// no display.
func RunWithProgress(label string, fn func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	model := progressModel{
		label: label,
		sw:    stopwatch.NewWithInterval(100 * time.Millisecond),
		done:  done,
	}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		// The display failed, not the operation.
		return <-done
	}
	return final.(progressModel).err
}
