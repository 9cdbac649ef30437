package components

import (
	"errors"
	"image"
	"testing"

	"dataplot/internal/commands"
	"dataplot/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	calls []*models.Dataset
}

func (r *stubRenderer) Render(ds *models.Dataset, width, height int) image.Image {
	r.calls = append(r.calls, ds)
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func newView(t *testing.T, r Renderer) *PlotView {
	t.Helper()
	return NewPlotView(models.SampleDataset(), r)
}

func TestAddTabsAreOrderedAndDistinct(t *testing.T) {
	test.NewTempApp(t)
	tc := NewTabContainer(nil)
	r := &stubRenderer{}

	views := make([]*PlotView, 3)
	for i := range views {
		views[i] = newView(t, r)
		index, err := tc.AddTab(views[i], string(rune('a'+i)))
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}

	assert.Equal(t, 3, tc.Count())
	assert.Equal(t, []string{"a", "b", "c"}, tc.Labels())
	for i, want := range views {
		got, _, err := tc.Tab(i)
		require.NoError(t, err)
		assert.Same(t, want, got)
	}

	current, index := tc.CurrentTab()
	assert.Same(t, views[2], current)
	assert.Equal(t, 2, index)
}

func TestAddTabRejectsSharedView(t *testing.T) {
	test.NewTempApp(t)
	tc := NewTabContainer(nil)
	view := newView(t, &stubRenderer{})

	_, err := tc.AddTab(view, "first")
	require.NoError(t, err)

	_, err = tc.AddTab(view, "second")
	assert.ErrorIs(t, err, ErrViewInUse)
	assert.Equal(t, 1, tc.Count())
}

func TestRemoveTab(t *testing.T) {
	test.NewTempApp(t)
	tc := NewTabContainer(nil)
	changes := 0
	tc.SetChangeHandler(func() { changes++ })

	_, _ = tc.AddTab(newView(t, &stubRenderer{}), "one")
	_, _ = tc.AddTab(newView(t, &stubRenderer{}), "two")

	require.NoError(t, tc.RemoveTab(0))
	assert.Equal(t, []string{"two"}, tc.Labels())
	assert.ErrorIs(t, tc.RemoveTab(5), ErrTabIndex)
	assert.Equal(t, 3, changes)

	require.NoError(t, tc.RemoveTab(0))
	view, index := tc.CurrentTab()
	assert.Nil(t, view)
	assert.Equal(t, -1, index)
}

func TestHandleDrop(t *testing.T) {
	test.NewTempApp(t)
	tc := NewTabContainer(nil)
	csvDrop := PayloadFromURIs([]fyne.URI{storage.NewFileURI("/data/run.csv")})
	require.Equal(t, DataItemFormat, csvDrop.Format)
	assert.Equal(t, "/data/run.csv", csvDrop.FirstPath())

	var dropped []DropPayload
	tc.SetEmptyDropHandler(func(p DropPayload) {
		dropped = append(dropped, p)
		_, _ = tc.AddTab(NewPlotView(nil, &stubRenderer{}), "run.csv")
	})

	other := PayloadFromURIs([]fyne.URI{storage.NewFileURI("/data/notes.txt")})
	assert.False(t, tc.HandleDrop(other))
	assert.Equal(t, 0, tc.Count())

	assert.True(t, tc.HandleDrop(csvDrop))
	assert.Equal(t, 1, tc.Count())

	// a second data drop must not replace the existing tab
	assert.False(t, tc.HandleDrop(csvDrop))
	assert.Equal(t, 1, tc.Count())
	assert.Len(t, dropped, 1)
}

func TestPlotViewRendersOnLayout(t *testing.T) {
	test.NewTempApp(t)
	r := &stubRenderer{}
	view := newView(t, r)

	w := test.NewWindow(view)
	defer w.Close()
	w.Resize(fyne.NewSize(400, 300))

	require.NotEmpty(t, r.calls)
	assert.Same(t, view.Dataset(), r.calls[len(r.calls)-1])
	require.NotNil(t, view.Image())
	assert.Positive(t, view.Image().Bounds().Dx())
}

func TestPlotXYValidatesShape(t *testing.T) {
	test.NewTempApp(t)
	view := NewPlotView(nil, &stubRenderer{})
	assert.Equal(t, "", view.Title())

	err := view.PlotXY([]float64{1, 2}, []float64{1}, "bad")
	var shape *models.ShapeMismatchError
	assert.True(t, errors.As(err, &shape))
	assert.Nil(t, view.Dataset())

	require.NoError(t, view.PlotXY([]float64{1, 2}, []float64{3, 4}, "ok"))
	assert.Equal(t, "ok", view.Title())
}

func TestToolbarDispatches(t *testing.T) {
	test.NewTempApp(t)
	var got []commands.Command
	tb := NewToolbar(func(c commands.Command) { got = append(got, c) })

	assert.True(t, tb.Trigger(commands.Open))
	assert.True(t, tb.Trigger(commands.ZoomOut))
	assert.False(t, tb.Trigger(commands.About))
	assert.Equal(t, []commands.Command{commands.Open, commands.ZoomOut}, got)
	assert.Len(t, tb.GetContainer().Items, 5)
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sb := NewStatusBar()
	assert.Equal(t, DefaultStatus, sb.GetStatus())

	sb.SetStatus("Loaded run.csv")
	sb.SetTabCount(2)
	assert.Equal(t, "Loaded run.csv", sb.GetStatus())
	assert.Equal(t, "2 plots", sb.GetTabInfo())

	sb.Reset()
	assert.Equal(t, DefaultStatus, sb.GetStatus())
}
