package timeutil

import (
	"time"
)

// EAT is East Africa Time (UTC+3), the timezone all rent dates are kept in
var EAT *time.Location

func init() {
	var err error
	EAT, err = time.LoadLocation("Africa/Nairobi")
	if err != nil {
		// Fallback: create fixed zone if Africa/Nairobi not available
		EAT = time.FixedZone("EAT", 3*60*60) // UTC+3
	}
}

// Now returns the current time in EAT
func Now() time.Time {
	return time.Now().In(EAT)
}

// ToEAT converts any time to EAT
func ToEAT(t time.Time) time.Time {
	return t.In(EAT)
}

// Today returns the current date in EAT as a YYYY-MM-DD string
func Today() string {
	return Now().Format(DateLayout)
}

// CurrentMonth returns the current month in EAT as a YYYY-MM string
func CurrentMonth() string {
	return Now().Format(MonthLayout)
}

// Common layouts for EAT formatting
const (
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
