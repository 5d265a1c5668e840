package config

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

type DatasetSource string

// maxPayloadSteps matches the slider mark cap of the dashboard.
const maxPayloadSteps = 1000

const (
	DatasetSourceFile     DatasetSource = "file"
	DatasetSourcePostgres DatasetSource = "postgres"
)

type Dataset struct {
	Source        DatasetSource `env:"DATASET_SOURCE" envDefault:"file"`
	Path          string        `env:"DATASET_PATH" envDefault:"spacex_launch_dash.csv"`
	Delimiter     string        `env:"DATASET_DELIMITER" envDefault:","`
	PayloadMin    float64       `env:"PAYLOAD_MIN" envDefault:"0"`
	PayloadMax    float64       `env:"PAYLOAD_MAX" envDefault:"10000"`
	PayloadStep   float64       `env:"PAYLOAD_STEP" envDefault:"1000"`
	ChartCacheTTL time.Duration `env:"CHART_CACHE_TTL" envDefault:"5m"`
}

// DelimiterRune is valid only after Load succeeded.
func (d Dataset) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}

func (d Dataset) validate() error {
	switch d.Source {
	case DatasetSourceFile, DatasetSourcePostgres:
	default:
		return fmt.Errorf("unknown source %q", d.Source)
	}

	if utf8.RuneCountInString(d.Delimiter) != 1 {
		return fmt.Errorf("delimiter %q must be a single character", d.Delimiter)
	}

	for name, v := range map[string]float64{"min": d.PayloadMin, "max": d.PayloadMax, "step": d.PayloadStep} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("payload %s must be finite, got %v", name, v)
		}
	}

	if d.PayloadMax < d.PayloadMin {
		return errors.New("payload max is below payload min")
	}

	if d.PayloadStep <= 0 {
		return errors.New("payload step must be positive")
	}

	if (d.PayloadMax-d.PayloadMin)/d.PayloadStep >= maxPayloadSteps {
		return fmt.Errorf("payload step %v yields more than %d slider marks", d.PayloadStep, maxPayloadSteps)
	}

	return nil
}
