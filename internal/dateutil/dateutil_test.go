package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name   string
		millis int64
		want   string
	}{
		{"regular timestamp", 1700000000000, "15.11.2023"},
		{"start of epoch day", 86400000, "02.01.1970"},
		{"zero is empty", 0, ""},
		{"negative is empty", -1, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDate(tc.millis))
		})
	}
}

func TestFormatDateToTurkish(t *testing.T) {
	assert.Equal(t, "", FormatDateToTurkish(time.Time{}))

	// 23:30 UTC rolls over to the next day in Turkish local time
	utc := time.Date(2024, 6, 30, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "01.07.2024", FormatDateToTurkish(utc))
}

func TestFormatDateIndependentOfHostZone(t *testing.T) {
	millis := int64(1700000000000)
	inUTC := FormatDate(millis)

	// Reinterpreting the same instant through another zone changes nothing
	other := time.UnixMilli(millis).In(time.FixedZone("XYZ", -11*60*60))
	assert.Equal(t, inUTC, FormatDateToTurkish(other))
}
