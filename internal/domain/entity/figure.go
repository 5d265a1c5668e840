package entity

import "slices"

type FigureKind string

const (
	FigureKindPie     FigureKind = "pie"
	FigureKindScatter FigureKind = "scatter"
)

// Figure is a chart specification independent of any renderer.
type Figure interface {
	Kind() FigureKind
	IsEmpty() bool
}

type PieSlice struct {
	Key   string
	Label string
	Value int
}

type PieChart struct {
	Title  string
	Slices []PieSlice
}

func (PieChart) Kind() FigureKind { return FigureKindPie }

func (p PieChart) IsEmpty() bool { return len(p.Slices) == 0 }

// Clone returns a copy that shares no backing array with p.
func (p PieChart) Clone() PieChart {
	p.Slices = slices.Clone(p.Slices)
	return p
}

func (p PieChart) Total() int {
	total := 0
	for _, slice := range p.Slices {
		total += slice.Value
	}

	return total
}

type ScatterPoint struct {
	X float64
	Y float64
}

// ScatterSeries is one colour group of the scatter chart.
type ScatterSeries struct {
	Name   string
	Points []ScatterPoint
}

type ScatterChart struct {
	Title  string
	XLabel string
	YLabel string
	Series []ScatterSeries
}

func (ScatterChart) Kind() FigureKind { return FigureKindScatter }

func (s ScatterChart) IsEmpty() bool { return s.PointCount() == 0 }

// Clone returns a deep copy of s, points included.
func (s ScatterChart) Clone() ScatterChart {
	series := s.Series
	if series != nil {
		series = make([]ScatterSeries, len(s.Series))
		for i, ss := range s.Series {
			series[i] = ScatterSeries{Name: ss.Name, Points: slices.Clone(ss.Points)}
		}
	}

	s.Series = series

	return s
}

func (s ScatterChart) PointCount() int {
	count := 0
	for _, series := range s.Series {
		count += len(series.Points)
	}

	return count
}
