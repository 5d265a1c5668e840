package persistence

import (
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
)

// launchRecordSchema maps a launch_records row.
type launchRecordSchema struct {
	ID                     int64   `db:"id"`
	FlightNumber           int     `db:"flight_number"`
	LaunchSite             string  `db:"launch_site"`
	PayloadMassKg          float64 `db:"payload_mass_kg"`
	BoosterVersion         string  `db:"booster_version"`
	BoosterVersionCategory string  `db:"booster_version_category"`
	Class                  int     `db:"class"`
}

func (s launchRecordSchema) toDomain() entity.LaunchRecord {
	return entity.LaunchRecord{
		FlightNumber:           s.FlightNumber,
		LaunchSite:             s.LaunchSite,
		PayloadMassKg:          s.PayloadMassKg,
		BoosterVersion:         s.BoosterVersion,
		BoosterVersionCategory: s.BoosterVersionCategory,
		Outcome:                value.Outcome(s.Class),
	}
}

func fromLaunchRecord(r entity.LaunchRecord) launchRecordSchema {
	return launchRecordSchema{
		FlightNumber:           r.FlightNumber,
		LaunchSite:             r.LaunchSite,
		PayloadMassKg:          r.PayloadMassKg,
		BoosterVersion:         r.BoosterVersion,
		BoosterVersionCategory: r.BoosterVersionCategory,
		Class:                  int(r.Outcome),
	}
}
