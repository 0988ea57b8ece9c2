package report

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNoChartData is returned when no result has a usable timing.
var ErrNoChartData = errors.New("no successful results to chart")

const (
	chartWidth  = 900
	chartMargin = 16
	labelWidth  = 260
	valueWidth  = 110
	barHeight   = 22
	barGap      = 8
	titleHeight = 28
)

var (
	chartBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	chartBar        = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	chartText       = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
)

// RenderChart draws a horizontal bar chart of mean durations, one bar per
// successful result, scaled to the slowest one.
func RenderChart(results []benchmark.Result) (*image.NRGBA, error) {
	var rows []benchmark.Result
	var slowest time.Duration
	sizes := map[int]bool{}
	for _, r := range results {
		if r.Error != nil || r.Iterations == 0 {
			continue
		}
		rows = append(rows, r)
		slowest = max(slowest, r.Mean())
		sizes[r.Size] = true
	}
	if len(rows) == 0 {
		return nil, ErrNoChartData
	}

	height := 2*chartMargin + titleHeight + len(rows)*(barHeight+barGap)
	img := imaging.New(chartWidth, height, chartBackground)

	title := "Mean sort duration"
	if len(sizes) == 1 {
		title = fmt.Sprintf("%s (n=%d)", title, rows[0].Size)
	}
	drawText(img, chartMargin, chartMargin+13, title)

	maxBar := chartWidth - labelWidth - valueWidth - 2*chartMargin
	for i, r := range rows {
		y := chartMargin + titleHeight + i*(barHeight+barGap)

		w := 1
		if slowest > 0 {
			w = max(int(float64(maxBar)*float64(r.Mean())/float64(slowest)), 1)
		}
		bar := imaging.New(w, barHeight, chartBar)
		img = imaging.Paste(img, bar, image.Pt(chartMargin+labelWidth, y))

		label := r.Label
		if len(sizes) > 1 {
			label = fmt.Sprintf("%s (n=%d)", r.Label, r.Size)
		}
		baseline := y + barHeight/2 + 5
		drawText(img, chartMargin, baseline, label)
		drawText(img, chartMargin+labelWidth+w+6, baseline, r.Mean().String())
	}
	return img, nil
}

// WriteChart renders the chart and saves it; the format follows the file
// extension (.png, .jpg, .gif, ...).
func WriteChart(path string, results []benchmark.Result) error {
	img, err := RenderChart(results)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save chart to %s: %w", path, err)
	}
	return nil
}

func drawText(img *image.NRGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(chartText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
