package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/smartins1234/netroute/dijkstra"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleKey.Render(fmt.Sprintf("%-10s", key)), styleNumber.Render(fmt.Sprint(value)))
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), msg)
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", styleWarning.Render(iconWarning), msg)
}

// printPath renders one route: a header with the total cost, then one line
// per hop with its length rounded to whole units.
func printPath(w io.Writer, p dijkstra.Path) {
	if !p.Reachable() {
		printWarning(w, fmt.Sprintf("%d %s %d: unreachable", p.Source, iconArrow, p.Dest))
		return
	}
	printSuccess(w, fmt.Sprintf("%d %s %d: cost %s (%d hops)", p.Source, iconArrow, p.Dest,
		styleNumber.Render(fmt.Sprintf("%.0f", p.Cost)), len(p.Hops)))
	for _, h := range p.Hops {
		fmt.Fprintf(w, "    %s %s %s  %s\n",
			h.FromLoc, styleDim.Render(iconArrow), h.ToLoc, styleNumber.Render(h.LengthLabel()))
	}
}
