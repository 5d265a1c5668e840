package entity

// Control and graph ids shared by the page, the layout and the callback
// registry.
const (
	SiteDropdownID        = "site-dropdown"
	PayloadSliderID       = "payload-slider"
	SuccessPieChartID     = "success-pie-chart"
	PayloadScatterChartID = "success-payload-scatter-chart"
)

type Option struct {
	Label string
	Value string
}

type Dropdown struct {
	ID          string
	Options     []Option
	Value       string
	Placeholder string
	Searchable  bool
}

type SliderMark struct {
	Value float64
	Label string
}

type RangeSlider struct {
	ID    string
	Label string
	Min   float64
	Max   float64
	Step  float64
	Marks []SliderMark
	Value [2]float64
}

type Graph struct {
	ID string
}

// Layout describes the dashboard page. It holds no behaviour.
type Layout struct {
	Title         string
	SiteDropdown  Dropdown
	PieGraph      Graph
	PayloadSlider RangeSlider
	ScatterGraph  Graph
}
