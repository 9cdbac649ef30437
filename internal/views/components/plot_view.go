package components

import (
	"image"

	"dataplot/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Renderer rasterises a dataset at a pixel size.
type Renderer interface {
	Render(ds *models.Dataset, width, height int) image.Image
}

// PlotView is a widget showing one dataset as an XY line plot. A PlotView
// without a dataset is an empty placeholder surface.
type PlotView struct {
	widget.BaseWidget

	dataset  *models.Dataset
	renderer Renderer
	image    *canvas.Image

	renderedAt fyne.Size
	renders    int
}

func NewPlotView(ds *models.Dataset, r Renderer) *PlotView {
	pv := &PlotView{
		dataset:  ds,
		renderer: r,
		image:    canvas.NewImageFromImage(nil),
	}
	pv.image.FillMode = canvas.ImageFillContain
	pv.image.ScaleMode = canvas.ImageScaleSmooth
	pv.ExtendBaseWidget(pv)
	return pv
}

// Dataset returns the plotted dataset, nil for a placeholder.
func (pv *PlotView) Dataset() *models.Dataset {
	return pv.dataset
}

// Title is the dataset title, empty for a placeholder.
func (pv *PlotView) Title() string {
	if pv.dataset == nil {
		return ""
	}
	return pv.dataset.Title()
}

// PlotXY replaces the plotted data. On a shape mismatch the current dataset
// is kept.
func (pv *PlotView) PlotXY(x, y []float64, title string) error {
	ds, err := models.NewDataset(x, y, title)
	if err != nil {
		return err
	}
	pv.dataset = ds
	pv.renderedAt = fyne.Size{}
	pv.Refresh()
	return nil
}

// Image returns the last rendered frame.
func (pv *PlotView) Image() image.Image {
	return pv.image.Image
}

func (pv *PlotView) CreateRenderer() fyne.WidgetRenderer {
	pv.ExtendBaseWidget(pv)
	return &plotViewRenderer{view: pv}
}

func (pv *PlotView) draw(size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 || size == pv.renderedAt {
		return
	}
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(pv); c != nil {
			scale = c.Scale()
		}
	}
	pv.image.Image = pv.renderer.Render(pv.dataset, int(size.Width*scale), int(size.Height*scale))
	pv.renderedAt = size
	pv.renders++
	pv.image.Refresh()
}

type plotViewRenderer struct {
	view *PlotView
}

func (r *plotViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *plotViewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	r.view.image.Move(fyne.NewPos(0, 0))
	r.view.draw(size)
}

func (r *plotViewRenderer) Refresh() {
	r.view.draw(r.view.Size())
	canvas.Refresh(r.view.image)
}

func (r *plotViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *plotViewRenderer) Destroy() {}
