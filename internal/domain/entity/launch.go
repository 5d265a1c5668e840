package entity

import (
	"fmt"
	"math"
	"slices"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/pkg/errcodes"
)

// LaunchRecord is one launch attempt.
type LaunchRecord struct {
	FlightNumber           int           `json:"flightNumber"`
	LaunchSite             string        `json:"launchSite"`
	PayloadMassKg          float64       `json:"payloadMassKg"`
	BoosterVersion         string        `json:"boosterVersion"`
	BoosterVersionCategory string        `json:"boosterVersionCategory"`
	Outcome                value.Outcome `json:"outcome"`
}

func (r LaunchRecord) Validate() error {
	if !r.Outcome.Valid() {
		return fmt.Errorf("outcome must be 0 or 1, got %d", r.Outcome)
	}

	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) || r.PayloadMassKg < 0 {
		return fmt.Errorf("payload mass must be a non-negative number, got %v", r.PayloadMassKg)
	}

	return nil
}

// Table is the launch dataset. It is built once and never changes, so it can
// be shared by any number of concurrent readers.
type Table struct {
	records []LaunchRecord
	sites   []string
}

// NewTable copies records into a new table. Every record must be valid; a
// partially valid input is rejected as a whole.
func NewTable(records []LaunchRecord) (*Table, error) {
	sites := make([]string, 0)
	seen := make(map[string]struct{})

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, domain.WrapError(err, errcodes.DatasetInvalidRecord, fmt.Sprintf("record %d", i))
		}

		if _, ok := seen[record.LaunchSite]; !ok {
			seen[record.LaunchSite] = struct{}{}
			sites = append(sites, record.LaunchSite)
		}
	}

	return &Table{
		records: slices.Clone(records),
		sites:   sites,
	}, nil
}

func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of all records in load order.
func (t *Table) Records() []LaunchRecord {
	return slices.Clone(t.records)
}

// Filter returns the records accepted by keep, in load order.
func (t *Table) Filter(keep func(LaunchRecord) bool) []LaunchRecord {
	result := make([]LaunchRecord, 0)

	for _, record := range t.records {
		if keep(record) {
			result = append(result, record)
		}
	}

	return result
}

// Sites lists distinct launch sites in order of first appearance.
func (t *Table) Sites() []string {
	return slices.Clone(t.sites)
}
