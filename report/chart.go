// Package report renders training curves.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cameroncuttingedge/tic_tac_toe_td/episode"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Render writes an HTML page with X-win, O-win and draw rates per window of
// episodes.
func Render(w io.Writer, stats *episode.Stats, window int) error {
	rates := stats.Windowed(window)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Self-play outcomes",
			Subtitle: fmt.Sprintf("%d episodes, window %d", stats.Episodes(), window),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	steps := make([]string, 0, len(rates))
	xWins := make([]opts.LineData, 0, len(rates))
	oWins := make([]opts.LineData, 0, len(rates))
	draws := make([]opts.LineData, 0, len(rates))
	for _, r := range rates {
		steps = append(steps, fmt.Sprintf("%d", r.End))
		xWins = append(xWins, opts.LineData{Value: r.XWin})
		oWins = append(oWins, opts.LineData{Value: r.OWin})
		draws = append(draws, opts.LineData{Value: r.Draw})
	}

	line.SetXAxis(steps).
		AddSeries("X wins", xWins).
		AddSeries("O wins", oWins).
		AddSeries("draws", draws)

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// WriteFile renders the chart into path, creating parent directories.
func WriteFile(path string, stats *episode.Stats, window int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := Render(f, stats, window); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
