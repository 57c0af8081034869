// Package live implements the real-time generation dashboard. It is a pure
// consumer: each tick it pulls a small batch from the source, updates its
// tally and redraws. The statistical core is never aware of it.
package live

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/qrand"
)

const (
	historyCapacity = 400
	batchPerTick    = 4
	recentCells     = 60
	tickInterval    = time.Second / 10
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	symbolStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

type TickMsg time.Time

// Model drives the dashboard: a source, its incremental tally, and the
// running-probability history for the graph.
type Model struct {
	src        qrand.Source
	tally      *analysis.Tally
	seq        qrand.Sequence
	probHist   [][]float64
	maxSamples int
	title      string
	running    bool
	err        error
}

func NewModel(src qrand.Source, maxSamples int, title string) Model {
	classes := src.Alphabet().Size() - 1
	hist := make([][]float64, classes)
	for i := range hist {
		hist[i] = make([]float64, 0, historyCapacity)
	}

	return Model{
		src:        src,
		tally:      analysis.NewTally(src.Alphabet()),
		seq:        make(qrand.Sequence, 0, maxSamples),
		probHist:   hist,
		maxSamples: maxSamples,
		title:      title,
		running:    true,
	}
}

// Sequence exposes the accumulated snapshot for a full analysis after the
// program exits.
func (m Model) Sequence() qrand.Sequence {
	return m.seq
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
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
			m.tally.Reset()
			m.seq = m.seq[:0]
			for i := range m.probHist {
				m.probHist[i] = m.probHist[i][:0]
			}
			m.running = true
		}
	case TickMsg:
		if m.running && len(m.seq) < m.maxSamples {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) step() {
	n := batchPerTick
	if remaining := m.maxSamples - len(m.seq); remaining < n {
		n = remaining
	}

	batch, err := m.src.Produce(context.Background(), n)
	if err != nil {
		m.err = err
		m.running = false
		return
	}

	for _, v := range batch {
		if err := m.tally.Observe(v); err != nil {
			m.err = err
			m.running = false
			return
		}
		m.seq = append(m.seq, v)
	}

	for c := range m.probHist {
		m.probHist[c] = append(m.probHist[c], m.tally.Probability(c+1))
		if len(m.probHist[c]) > historyCapacity {
			m.probHist[c] = m.probHist[c][1:]
		}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	if m.err != nil {
		fmt.Fprintf(&b, "error: %v\n", m.err)
		return b.String()
	}

	runs := m.tally.Runs()
	b.WriteString(labelStyle.Render("samples") + valueStyle.Render(fmt.Sprintf("%d / %d", m.tally.Total(), m.maxSamples)) + "\n")
	for v := 0; v < m.src.Alphabet().Size(); v++ {
		line := fmt.Sprintf("%d (p=%.4f)", m.tally.Count(v), m.tally.Probability(v))
		b.WriteString(labelStyle.Render(fmt.Sprintf("value %d", v)) + symbolStyles[v%len(symbolStyles)].Render(line) + "\n")
	}
	b.WriteString(labelStyle.Render("runs") + valueStyle.Render(fmt.Sprintf("%d (max %d, current %d)", runs.Count, runs.Max, m.tally.CurrentRun())) + "\n")

	if len(m.probHist[0]) >= 2 {
		b.WriteString("\n")
		caption := fmt.Sprintf("running probability (ideal %.3f)", m.src.Alphabet().IdealProbability())
		if len(m.probHist) == 1 {
			b.WriteString(asciigraph.Plot(m.probHist[0],
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption(caption),
			))
		} else {
			b.WriteString(asciigraph.PlotMany(m.probHist,
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.Caption(caption),
			))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + labelStyle.Render("recent"))
	for _, v := range m.seq.Tail(recentCells) {
		b.WriteString(symbolStyles[v%len(symbolStyles)].Render("█"))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
