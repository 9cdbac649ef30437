package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"slices"
	"strings"

	"dataplot/internal/logger"
	"dataplot/internal/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	MinRenderWidth  = 64
	MinRenderHeight = 48
)

var (
	lineColor       = drawing.Color{R: 0, G: 128, B: 0, A: 255}
	exportLineColor = color.RGBA{G: 128, A: 255}

	ErrEmptyDataset = errors.New("dataset has no points")
)

// ExportFormats lists the file extensions Export understands.
var ExportFormats = []string{".png", ".svg", ".pdf"}

// PlotService draws datasets. Screen rendering goes through go-chart; file
// export goes through gonum/plot so vector formats are available.
type PlotService struct {
	logger logger.Logger
}

func NewPlotService(log logger.Logger) *PlotService {
	if log == nil {
		log = logger.Nop{}
	}
	return &PlotService{logger: log}
}

// Render draws ds as a green XY line plot of the given pixel size. A nil or
// empty dataset, or a chart that fails to render, yields a blank canvas.
func (ps *PlotService) Render(ds *models.Dataset, width, height int) image.Image {
	width = max(width, MinRenderWidth)
	height = max(height, MinRenderHeight)

	if ds == nil || ds.Len() == 0 {
		return blank(width, height)
	}

	img, err := renderChart(ds, width, height)
	if err != nil {
		ps.logger.Warning("chart render failed, showing blank canvas", map[string]interface{}{
			"title": ds.Title(),
			"error": err.Error(),
		})
		return blank(width, height)
	}
	return img
}

func renderChart(ds *models.Dataset, width, height int) (image.Image, error) {
	xs, ys := ds.X(), ds.Y()
	if len(xs) == 1 {
		// go-chart needs two x values to build a range
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:  ds.Title(),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{Range: flatRange(xs)},
		YAxis: chart.YAxis{Range: flatRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    ds.Title(),
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// flatRange widens a constant series so the axis has a non-zero span. It
// returns nil when the values already span a range.
func flatRange(values []float64) chart.Range {
	lo, hi := slices.Min(values), slices.Max(values)
	if lo != hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// Export writes ds to path. The format follows the extension of path and
// must be one of ExportFormats.
func (ps *PlotService) Export(ds *models.Dataset, path string) error {
	if ds == nil || ds.Len() == 0 {
		return ErrEmptyDataset
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(ExportFormats, ext) {
		return fmt.Errorf("unsupported export format %q", ext)
	}

	p := plot.New()
	p.Title.Text = ds.Title()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, ds.Len())
	for i := range pts {
		pts[i].X, pts[i].Y = ds.Point(i)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = exportLineColor
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return &models.FileAccessError{Path: path, Err: err}
	}

	ps.logger.Info("plot exported", map[string]interface{}{
		"path":   path,
		"points": ds.Len(),
	})
	return nil
}
