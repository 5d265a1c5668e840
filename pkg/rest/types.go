// Wire types of the dashboard HTTP API.
package rest

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type RangeSlider struct {
	ID    string       `json:"id"`
	Label string       `json:"label"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Marks []SliderMark `json:"marks"`
	Value []float64    `json:"value"`
}

type Graph struct {
	ID string `json:"id"`
}

// Callback tells the client which outputs to refresh when a control changes.
type Callback struct {
	Output   string   `json:"output"`
	Triggers []string `json:"triggers"`
}

type Layout struct {
	Title         string      `json:"title"`
	SiteDropdown  Dropdown    `json:"siteDropdown"`
	PieGraph      Graph       `json:"pieGraph"`
	PayloadSlider RangeSlider `json:"payloadSlider"`
	ScatterGraph  Graph       `json:"scatterGraph"`
	Callbacks     []Callback  `json:"callbacks"`
}

// CallbackRequest carries the current control values. A missing payload range
// means the slider defaults.
type CallbackRequest struct {
	Site         string    `json:"site"`
	PayloadRange []float64 `json:"payloadRange" validate:"omitempty,len=2"`
}

type PieSlice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// Figure is either a pie (Slices) or a scatter (Series) chart.
type Figure struct {
	Kind   string          `json:"kind"`
	Title  string          `json:"title"`
	Empty  bool            `json:"empty"`
	XLabel string          `json:"xLabel,omitempty"`
	YLabel string          `json:"yLabel,omitempty"`
	Slices []PieSlice      `json:"slices,omitempty"`
	Series []ScatterSeries `json:"series,omitempty"`
}

// Error is the body of every failed request.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
