// Package viz provides a terminal live view of the explicit sub-stepping:
// the forward-Euler recurrence advanced tick by tick with the evolving
// moduli and stress traces on screen.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/geosim/internal/integrate"
	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

const (
	graphWidth  = 70
	graphHeight = 8
	tickRate    = time.Second / 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the recurrence state and the on-screen traces.
type Model struct {
	par   material.Params
	start stress.State
	inc   stress.Increment
	steps int
	chunk int // sub-steps advanced per tick

	i       int
	cur     stress.State
	pHist   []float64
	qHist   []float64
	running bool
	err     error
}

func NewModel(par material.Params, start stress.State, inc stress.Increment, steps int) Model {
	chunk := steps / 600
	if chunk < 1 {
		chunk = 1
	}
	return Model{
		par:     par,
		start:   start,
		inc:     inc,
		steps:   steps,
		chunk:   chunk,
		cur:     start,
		pHist:   []float64{start.P},
		qHist:   []float64{start.Q},
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.err == nil && m.i < m.steps {
				m.running = !m.running
			}
		case "r":
			fresh := NewModel(m.par, m.start, m.inc, m.steps)
			return fresh, tick()
		}
		return m, nil

	case TickMsg:
		if m.running && m.err == nil {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance walks the recurrence by up to one chunk of sub-steps.
func (m *Model) advance() {
	dv := m.inc.EpsV / float64(m.steps)
	dq := m.inc.EpsQ / float64(m.steps)

	for k := 0; k < m.chunk && m.i < m.steps; k++ {
		next, err := integrate.SubStep(m.cur, m.par, dv, dq)
		if err != nil {
			m.err = &stress.StepError{Step: m.i + 1, N: m.steps, P: next.P, Wrapped: err}
			m.running = false
			return
		}
		m.cur = next
		m.i++
	}
	m.pHist = append(m.pHist, m.cur.P)
	m.qHist = append(m.qHist, m.cur.Q)
	if m.i >= m.steps {
		m.running = false
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("geosim · forward-euler sub-stepping"))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}
	row("sub-step", fmt.Sprintf("%d / %d", m.i, m.steps))
	row("p", fmt.Sprintf("%.4f", m.cur.P))
	row("q", fmt.Sprintf("%.4f", m.cur.Q))
	row("K(p)", fmt.Sprintf("%.2f", m.par.K(m.cur.P)))
	row("G(p)", fmt.Sprintf("%.2f", m.par.G(m.cur.P)))

	if m.err != nil {
		b.WriteByte('\n')
		b.WriteString(errStyle.Render(fmt.Sprintf("aborted: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.pHist) >= 2 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.pHist,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("mean stress p"),
		)))
		b.WriteByte('\n')
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.qHist,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("deviatoric stress q"),
		)))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteByte('\n')
	return b.String()
}
