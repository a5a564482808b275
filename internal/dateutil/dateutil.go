package dateutil

import "time"

// Display dates are fixed to Turkish local time regardless of server locale
var turkeyZone = time.FixedZone("TRT", 3*60*60)

// FormatDate converts an epoch-millisecond timestamp to a DD.MM.YYYY display
// string. Zero and negative inputs yield "" rather than an error.
func FormatDate(millis int64) string {
	if millis <= 0 {
		return ""
	}
	return FormatDateToTurkish(time.UnixMilli(millis))
}

// FormatDateToTurkish renders a time as DD.MM.YYYY in Turkish local time.
// The zero time yields "".
func FormatDateToTurkish(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(turkeyZone).Format("02.01.2006")
}
