package domain

// DriverID is a driver's permanent racing number. Zero means "no driver set"
// (an empty prediction slot or a result slot that is not available yet).
type DriverID int

// DriverNone marks an unset slot. Permanent numbers are always >= 1, so zero
// is safe as the sentinel.
const DriverNone DriverID = 0

// Set reports whether the slot holds an actual driver.
func (d DriverID) Set() bool {
	return d > 0
}

// ConstructorID is the race-data provider's stable constructor identifier
// (e.g. "red_bull", "ferrari").
type ConstructorID string
