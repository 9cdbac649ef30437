package models

import "slices"

// Dataset is an immutable pair of equal-length numeric sequences.
type Dataset struct {
	x     []float64
	y     []float64
	title string
}

// NewDataset copies x and y into a new Dataset.
func NewDataset(x, y []float64, title string) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, &ShapeMismatchError{XLen: len(x), YLen: len(y)}
	}
	return &Dataset{
		x:     slices.Clone(x),
		y:     slices.Clone(y),
		title: title,
	}, nil
}

func (d *Dataset) X() []float64 { return slices.Clone(d.x) }

func (d *Dataset) Y() []float64 { return slices.Clone(d.y) }

func (d *Dataset) Title() string { return d.title }

func (d *Dataset) Len() int { return len(d.x) }

// Point returns the i-th coordinate pair.
func (d *Dataset) Point(i int) (float64, float64) {
	return d.x[i], d.y[i]
}
