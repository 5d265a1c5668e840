package entity

type SiteStats struct {
	Site          string
	Launches      int
	Successes     int
	Failures      int
	SuccessRate   float64
	MinPayloadKg  float64
	MaxPayloadKg  float64
	MeanPayloadKg float64
}
