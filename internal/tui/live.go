// Package tui runs the simulation live in the terminal: trajectory
// graphs and level readouts updating as the centuries tick by.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/worldsim/internal/chart"
	"github.com/san-kum/worldsim/internal/world"
)

const (
	historyCapacity = 600
	ticksPerFrame   = 5 // one year of model time per frame at DT=0.2
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps an engine a few ticks per frame and renders its recent
// trajectory.
type Model struct {
	scenario string
	cfg      world.Config
	eng      *world.Engine
	snap     world.Snapshot
	running  bool
	err      error

	popHistory  []float64
	polrHistory []float64
	qlHistory   []float64
}

func NewModel(scenario string, cfg world.Config) Model {
	return Model{
		scenario:    scenario,
		cfg:         cfg,
		eng:         world.New(cfg),
		running:     true,
		popHistory:  make([]float64, 0, historyCapacity),
		polrHistory: make([]float64, 0, historyCapacity),
		qlHistory:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.eng = world.New(m.cfg)
			m.snap = world.Snapshot{}
			m.err = nil
			m.popHistory = m.popHistory[:0]
			m.polrHistory = m.polrHistory[:0]
			m.qlHistory = m.qlHistory[:0]
			m.running = true
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < ticksPerFrame && !m.eng.Completed(); i++ {
		snap, err := m.eng.Tick()
		if err != nil {
			m.err = err
			return
		}
		m.snap = snap
	}

	m.popHistory = appendCapped(m.popHistory, m.snap.P)
	m.polrHistory = appendCapped(m.polrHistory, m.snap.POLR)
	m.qlHistory = appendCapped(m.qlHistory, m.snap.QL)
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (m Model) View() string {
	var s strings.Builder

	title := "WORLD MODEL"
	if m.scenario != "" {
		title += "  [" + m.scenario + "]"
	}
	s.WriteString(headerStyle.Render(title) + "\n")

	status := "RUNNING"
	switch {
	case m.err != nil:
		status = errStyle.Render("ERROR: " + m.err.Error())
	case m.eng.Completed():
		status = "COMPLETE"
	case !m.running:
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.popHistory) > 1 {
		pop := asciigraph.Plot(scaled(m.popHistory, 1e9),
			asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("Population (billions)"))
		s.WriteString(graphStyle.Render(pop) + "\n")
	}
	if len(m.polrHistory) > 1 {
		polr := asciigraph.Plot(m.polrHistory,
			asciigraph.Height(4), asciigraph.Width(60), asciigraph.Caption("Pollution ratio"))
		s.WriteString(graphStyle.Render(polr) + "\n")
	}

	s.WriteString(labelStyle.Render("Year") + valueStyle.Render(fmt.Sprintf("%.1f", m.snap.Time)) + "\n")
	for _, row := range []struct {
		name string
		v    float64
	}{
		{"Population", m.snap.P},
		{"Capital", m.snap.CI},
		{"Resources", m.snap.NR},
		{"Pollution", m.snap.POL},
		{"Food ratio", m.snap.FR},
		{"Quality", m.snap.QL},
	} {
		s.WriteString(labelStyle.Render(row.name) + valueStyle.Render(chart.FormatMagnitude(row.v)) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  Q:Quit"))
	return s.String()
}

func scaled(vs []float64, div float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v / div
	}
	return out
}
