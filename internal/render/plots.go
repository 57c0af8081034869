package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/export"
	"github.com/san-kum/qrand/internal/qrand"
	"github.com/san-kum/qrand/internal/viz"
)

const (
	// recentWindow is the number of trailing outcomes in the scatter view.
	recentWindow = 50

	graphWidth  = 70
	graphHeight = 10
	barWidth    = 40
)

// runningProbabilities tracks the cumulative probability of each non-zero
// class at every sample index.
func runningProbabilities(seq qrand.Sequence, alphabet qrand.Alphabet) [][]float64 {
	classes := alphabet.Size() - 1
	series := make([][]float64, classes)
	for c := range series {
		series[c] = make([]float64, len(seq))
	}

	counts := make([]int, alphabet.Size())
	for i, v := range seq {
		counts[v]++
		for c := 1; c < alphabet.Size(); c++ {
			series[c-1][i] = float64(counts[c]) / float64(i+1)
		}
	}
	return series
}

// theoryOverlay is the fair-coin geometric decay runs*0.5^k, defined for
// binary sources only.
func theoryOverlay(runCount, maxRun int) []float64 {
	overlay := make([]float64, maxRun)
	for k := 1; k <= maxRun; k++ {
		overlay[k-1] = float64(runCount) * math.Pow(0.5, float64(k))
	}
	return overlay
}

// Plots renders the four descriptive charts for the terminal.
func Plots(seq qrand.Sequence, r *analysis.Report, title string) string {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "%s\n\n", title)
	}

	// Outcome distribution with the ideal expectation.
	ideal := float64(r.Total) * r.Alphabet.IdealProbability()
	fmt.Fprintf(&b, "outcome distribution (ideal %.1f per symbol):\n", ideal)
	maxCount := 0
	for _, s := range r.Symbols {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	for _, s := range r.Symbols {
		bar := 0
		if maxCount > 0 {
			bar = s.Count * barWidth / maxCount
		}
		fmt.Fprintf(&b, "  %-10s %s %d\n", symbolLabel(s.Value, r.Alphabet), strings.Repeat("█", bar), s.Count)
	}

	// Running probability of the non-zero class(es).
	series := runningProbabilities(seq, r.Alphabet)
	caption := fmt.Sprintf("running probability (ideal %.3f)", r.Alphabet.IdealProbability())
	b.WriteString("\n")
	if len(series) == 1 {
		b.WriteString(asciigraph.Plot(series[0],
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(caption),
		))
	} else {
		b.WriteString(asciigraph.PlotMany(series,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(caption),
		))
	}
	b.WriteString("\n")

	// Most recent outcomes as a braille scatter.
	recent := seq.Tail(recentWindow)
	fmt.Fprintf(&b, "\nlast %d outcomes (0 at bottom):\n", len(recent))
	b.WriteString(viz.ScatterSequence(recent, r.Alphabet, graphWidth, 4))

	// Run-length histogram, with the fair-coin decay in binary mode.
	lengths := analysis.RunLengths(seq)
	hist := analysis.RunHistogram(lengths)
	fmt.Fprintf(&b, "\nrun lengths:\n")
	var overlay []float64
	if r.Alphabet == qrand.Binary {
		overlay = theoryOverlay(r.Runs.Count, r.Runs.Max)
	}
	for k := 1; k <= r.Runs.Max; k++ {
		count := hist[k]
		bar := 0
		if len(lengths) > 0 {
			bar = count * barWidth / len(lengths)
		}
		fmt.Fprintf(&b, "  %3d | %s %d", k, strings.Repeat("█", bar), count)
		if overlay != nil {
			fmt.Fprintf(&b, "   (theory %.1f)", overlay[k-1])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// SavePlots writes the four charts as SVG artifacts into dir and returns
// the written paths. The sequence must be non-empty; the renderer rejects
// empty input before any analysis or file output happens.
func SavePlots(seq qrand.Sequence, r *analysis.Report, title, dir string) ([]string, error) {
	if len(seq) == 0 {
		return nil, qrand.ErrEmptySequence
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	labels := make([]string, len(r.Symbols))
	values := make([]float64, len(r.Symbols))
	for i, s := range r.Symbols {
		labels[i] = symbolLabel(s.Value, r.Alphabet)
		values[i] = float64(s.Count)
	}
	ideal := float64(r.Total) * r.Alphabet.IdealProbability()
	distribution := export.BarChart(labels, values, ideal, 480, 320, title+" - distribution")

	probSeries := runningProbabilities(seq, r.Alphabet)
	series := make([]export.Series, len(probSeries))
	for i, vals := range probSeries {
		series[i] = export.Series{
			Name:   fmt.Sprintf("p(%d)", i+1),
			Values: vals,
			Color:  export.Palette[(i+1)%len(export.Palette)],
		}
	}
	running := export.LineChart(series, r.Alphabet.IdealProbability(), 0, 1, 480, 320, title+" - running probability")

	recent := seq.Tail(recentWindow)
	points := make([]export.Point, len(recent))
	ticks := make([]float64, r.Alphabet.Size())
	for i := range ticks {
		ticks[i] = float64(i)
	}
	for i, v := range recent {
		points[i] = export.Point{X: float64(i), Y: float64(v)}
	}
	scatter := export.ScatterChart(points, ticks, 480, 320, title+" - recent outcomes")

	hist := analysis.RunHistogram(analysis.RunLengths(seq))
	counts := make([]float64, r.Runs.Max)
	for k := 1; k <= r.Runs.Max; k++ {
		counts[k-1] = float64(hist[k])
	}
	var overlay []float64
	if r.Alphabet == qrand.Binary {
		overlay = theoryOverlay(r.Runs.Count, r.Runs.Max)
	}
	runs := export.Histogram(counts, overlay, 480, 320, title+" - run lengths")

	artifacts := map[string]string{
		"distribution.svg":        distribution,
		"running_probability.svg": running,
		"recent_outcomes.svg":     scatter,
		"run_lengths.svg":         runs,
	}

	paths := make([]string, 0, len(artifacts))
	for _, name := range []string{"distribution.svg", "running_probability.svg", "recent_outcomes.svg", "run_lengths.svg"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(artifacts[name]), 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
