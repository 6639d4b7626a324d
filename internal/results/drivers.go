package results

import (
	"strconv"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// driverNumbers maps broadcast abbreviations to racing numbers. The table is
// the primary identity source; the payload's permanent number is only a
// fallback for codes that are not listed (rookies, mid-season substitutes).
var driverNumbers = map[string]domain.DriverID{
	"VER": 1,
	"PER": 11,
	"HAM": 44,
	"RUS": 63,
	"ANT": 12,
	"LEC": 16,
	"SAI": 55,
	"NOR": 4,
	"PIA": 81,
	"ALO": 14,
	"STR": 18,
	"OCO": 31,
	"GAS": 10,
	"ALB": 23,
	"SAR": 2,
	"COL": 43,
	"BOT": 77,
	"ZHO": 24,
	"BOR": 5,
	"MAG": 20,
	"HUL": 27,
	"BEA": 87,
	"TSU": 22,
	"RIC": 3,
	"LAW": 30,
	"HAD": 6,
	"DOO": 7,
	"DEV": 21,
}

// ResolveDriver turns a payload driver identity into a racing number. Unknown
// codes fall back to the permanent number field; when that is unparsable too,
// the driver stays unresolved (DriverNone) and simply never matches a guess.
func ResolveDriver(code, permanentNumber string) domain.DriverID {
	if id, ok := driverNumbers[code]; ok {
		return id
	}
	if n, err := strconv.Atoi(permanentNumber); err == nil && n > 0 {
		return domain.DriverID(n)
	}
	return domain.DriverNone
}
