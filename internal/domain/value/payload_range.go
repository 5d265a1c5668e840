package value

import (
	"fmt"
	"strconv"
)

// payloadBounds is the number of slider handles.
const payloadBounds = 2

// PayloadRange is an inclusive [Min, Max] filter on payload mass in kg. Any
// pair is accepted; Min > Max matches nothing.
type PayloadRange struct {
	Min float64
	Max float64
}

// NewPayloadRange builds a range from the two slider handles.
func NewPayloadRange(bounds []float64) (PayloadRange, error) {
	if len(bounds) != payloadBounds {
		return PayloadRange{}, fmt.Errorf("payload range needs %d bounds, got %d", payloadBounds, len(bounds))
	}

	return PayloadRange{Min: bounds[0], Max: bounds[1]}, nil
}

func (r PayloadRange) Contains(massKg float64) bool {
	return massKg >= r.Min && massKg <= r.Max
}

func (r PayloadRange) String() string {
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + ", " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}
