package types

import "time"

// KyivLocation returns the reference timezone for snapshot timestamps
// and for local-hour / local-date bucketing
func KyivLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err == nil {
		return loc
	}

	return time.FixedZone("EET", 2*60*60)
}
