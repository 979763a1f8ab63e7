package viz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/growvec/internal/dynarray"
	"github.com/san-kum/growvec/internal/scenario"
)

// MaxSlots bounds how many slots RenderSlots draws.
const MaxSlots = 48

// RenderSlots draws every slot of arr: filled slots show their value,
// spare slots show a dot.
func RenderSlots(arr *dynarray.Array[int]) string {
	values := arr.Values()
	shown := arr.Cap()
	if shown > MaxSlots {
		shown = MaxSlots
	}

	cells := make([]string, 0, shown+1)
	for i := 0; i < shown; i++ {
		if i < len(values) {
			cells = append(cells, FilledSlot.Render(" "+strconv.Itoa(values[i])+" "))
		} else {
			cells = append(cells, SpareSlot.Render(" · "))
		}
	}
	if arr.Cap() > shown {
		cells = append(cells, Subtle.Render(fmt.Sprintf(" +%d", arr.Cap()-shown)))
	}
	if len(cells) == 0 {
		return Subtle.Render("(no slots)")
	}
	return strings.Join(cells, "")
}

// RenderState renders a panel with capacity, size, fill ratio and slots.
func RenderState(title string, arr *dynarray.Array[int]) string {
	fill := 0.0
	if arr.Cap() > 0 {
		fill = float64(arr.Len()) / float64(arr.Cap())
	}

	rows := []string{
		Title.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, MetricLabel.Render("capacity"), MetricValue.Render(strconv.Itoa(arr.Cap()))),
		lipgloss.JoinHorizontal(lipgloss.Top, MetricLabel.Render("size"), MetricValue.Render(strconv.Itoa(arr.Len()))),
		lipgloss.JoinHorizontal(lipgloss.Top, MetricLabel.Render("fill"), ProgressBar(fill, 20)),
		"",
		RenderSlots(arr),
	}
	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderStep formats one trace line.
func RenderStep(step scenario.Step) string {
	line := fmt.Sprintf("#%-3d %-10s %-12s size=%-3d cap=%-3d", step.Index, step.Op, step.Arg, step.Size, step.Capacity)
	if step.Output != "" {
		line += " -> " + step.Output
	}
	if step.Failed() {
		return StatusError.Render(line + "  " + step.Err)
	}
	return line
}

// PlotGrowth charts size and capacity against step number.
func PlotGrowth(steps []scenario.Step, width, height int) string {
	if len(steps) == 0 {
		return ""
	}

	sizes := make([]float64, len(steps))
	capacities := make([]float64, len(steps))
	for i, s := range steps {
		sizes[i] = float64(s.Size)
		capacities[i] = float64(s.Capacity)
	}

	return asciigraph.PlotMany([][]float64{capacities, sizes},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green),
		asciigraph.Caption("capacity (blue) and size (green) per step"),
	)
}

// RenderMetrics lists metrics sorted by name.
func RenderMetrics(values map[string]float64) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			MetricLabel.Width(16).Render(name),
			MetricValue.Render(strconv.FormatFloat(values[name], 'f', 3, 64))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
