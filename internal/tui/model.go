// Package tui implements a live terminal dashboard over a running solve. It
// starts a search on a background goroutine, polls its progress on a
// ticker, and lets the user cancel it - the same "apply move, query state,
// request solve, poll progress/cancel" interface internal/web exposes over
// HTTP, here over a terminal instead.
package tui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/delford/twophase-cube/internal/cube"
	"github.com/delford/twophase-cube/internal/solver"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solutionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type solveDoneMsg struct {
	solution []cube.Move
	duration time.Duration
}

// model drives a single solve and renders its progress.
type model struct {
	c        *cube.Cube
	cancel   atomic.Bool
	progress solver.Progress
	start    time.Time

	done     bool
	quitting bool
	solution []cube.Move
	duration time.Duration
}

func newModel(c *cube.Cube) *model {
	return &model{c: c, start: time.Now()}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.startSolveCmd(), m.tickCmd())
}

func (m *model) startSolveCmd() tea.Cmd {
	return func() tea.Msg {
		solution := solver.SolveWithProgress(m.c, &m.cancel, &m.progress)
		return solveDoneMsg{solution: solution, duration: time.Since(m.start)}
	}
}

func (m *model) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.done {
				m.quitting = true
				return m, tea.Quit
			}
			m.cancel.Store(true)
			return m, nil
		}

	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, m.tickCmd()

	case solveDoneMsg:
		m.done = true
		m.solution = msg.solution
		m.duration = msg.duration
		return m, nil
	}

	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Two-Phase Cube Solver"))
	b.WriteString("\n\n")

	if m.cancel.Load() && !m.done {
		b.WriteString(statusStyle.Render("Cancelling..."))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Nodes searched:"), m.progress.Nodes.Load()))
	b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Phase-1 depth:"), m.progress.Depth.Load()))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Elapsed:"), time.Since(m.start).Round(10*time.Millisecond)))

	if m.done {
		b.WriteString("\n")
		if len(m.solution) == 0 && !m.c.IsSolved() {
			b.WriteString(statusStyle.Render("No solution found (cancelled or unsolvable)."))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Solution:"), solutionStyle.Render(cube.FormatMoves(m.solution))))
			b.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("Moves:"), len(m.solution)))
			b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Total time:"), m.duration.Round(10*time.Millisecond)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press q to exit"))
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press q to cancel"))
	}

	return b.String()
}

// Run starts a solve for c and drives a full-screen dashboard until it
// completes (or the user cancels). It returns the solution found, which is
// empty if the search was cancelled before finding one.
func Run(c *cube.Cube) ([]cube.Move, error) {
	m := newModel(c)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*model).solution, nil
}
