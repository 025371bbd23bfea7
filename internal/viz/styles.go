package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/accrete/internal/accrete"
	"github.com/san-kum/accrete/internal/experiment"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
	tableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff")).Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	giantCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00")).Padding(0, 1)

	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// PlanetTable renders one row per planet, innermost first. Gas giant rows
// are highlighted.
func PlanetTable(planets accrete.Planets) string {
	rows := make([][]string, len(planets))
	for i, p := range planets {
		kind := "rocky"
		if p.GasGiant {
			kind = "gas giant"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.4f", p.Axis),
			fmt.Sprintf("%.4f", p.Eccn),
			fmt.Sprintf("%.4g", p.Mass),
			fmt.Sprintf("%.3f", p.EarthMass()),
			kind,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorder).
		Headers("#", "AXIS (AU)", "ECCN", "MASS (SUN)", "MASS (EARTH)", "TYPE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			if row >= 0 && row < len(planets) && planets[row].GasGiant {
				return giantCell
			}
			return tableCell
		})
	return t.Render()
}

// MassProfile plots log10 earth masses against planet index.
func MassProfile(planets accrete.Planets, width int) string {
	if len(planets) == 0 {
		return ""
	}
	values := make([]float64, len(planets))
	for i, p := range planets {
		values[i] = math.Log10(math.Max(p.EarthMass(), 1e-6))
	}
	chart := asciigraph.Plot(values,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("log10 mass (earth) by planet"))
	return graphStyle.Render(chart)
}

// SummaryView renders ensemble statistics and the axis histogram.
func SummaryView(s experiment.Summary) string {
	stats := []struct {
		name string
		stat experiment.Stat
	}{
		{"planets", s.Planets},
		{"gas giants", s.Giants},
		{"total mass", s.TotalMass},
		{"largest at", s.LargestAxis},
		{"nuclei", s.Nuclei},
		{"merges", s.Coalescences},
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("ENSEMBLE (%d runs)", s.Runs)) + "\n")
	for _, st := range stats {
		sb.WriteString(labelStyle.Render(st.name) +
			valueStyle.Render(fmt.Sprintf("%.4g ± %.3g", st.stat.Mean, st.stat.StdDev)) + "\n")
	}

	sb.WriteString("\n" + headerStyle.Render("PLANETS BY AXIS (AU)") + "\n")
	peak := 0
	for _, n := range s.AxisHistogram {
		peak = max(peak, n)
	}
	for i, n := range s.AxisHistogram {
		frac := 0.0
		if peak > 0 {
			frac = float64(n) / float64(peak)
		}
		label := fmt.Sprintf("%g-%g", experiment.AxisBins[i], experiment.AxisBins[i+1])
		sb.WriteString(labelStyle.Render(label) + ProgressBar(frac, 24) + valueStyle.Render(fmt.Sprintf(" %d", n)) + "\n")
	}
	return sb.String()
}

// ProgressBar renders frac in [0,1] as a filled bar of the given width.
func ProgressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}
