package tzoffset

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
)

// Zones whose recorded history has not changed between recent tzdata
// releases, so the comparison does not depend on the Go toolchain's copy.
var parityZones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Los_Angeles",
	"America/St_Johns",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Dublin",
	"Asia/Tokyo",
	"Asia/Kolkata",
	"Asia/Kathmandu",
	"Asia/Jerusalem",
	"Australia/Sydney",
	"Australia/Lord_Howe",
	"Pacific/Auckland",
	"Pacific/Chatham",
	"Africa/Johannesburg",
}

// probes returns the instants of the parity sweep: the 1st, 15th and last
// day of each month at hours chosen to straddle transition windows.
func probes(from, to int) []int64 {
	hours := []int{0, 1, 2, 3, 6, 12, 18, 23}
	var out []int64
	for y := from; y <= to; y++ {
		for m := time.January; m <= time.December; m++ {
			last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for _, d := range []int{1, 15, last} {
				for _, h := range hours {
					out = append(out, time.Date(y, m, d, h, 0, 0, 0, time.UTC).Unix())
				}
			}
		}
	}
	return out
}

func referenceOffset(loc *time.Location, ts int64) int16 {
	_, secs := time.Unix(ts, 0).In(loc).Zone()
	return int16(secs / 60)
}

func checkParity(t *testing.T, names []string) {
	instants := probes(1970, 2025)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Skipf("reference has no %s: %v", name, err)
			}
			tz := MustParse(name)
			for _, ts := range instants {
				require.Equal(t, referenceOffset(loc, ts), tz.OffsetAtTimestamp(ts),
					"%s at %s", name, time.Unix(ts, 0).UTC().Format(time.RFC3339))
			}
		})
	}
}

func TestParity(t *testing.T) {
	checkParity(t, parityZones)
}

// TestParityAllZones compares every zone. It is opt in because the result
// depends on the tzdata release compiled into the Go toolchain.
func TestParityAllZones(t *testing.T) {
	if os.Getenv("TZOFFSET_PARITY") != "all" {
		t.Skip("set TZOFFSET_PARITY=all to compare every zone")
	}
	checkParity(t, ListTimezones())
}

func TestRulesAgreeBeyondHistory(t *testing.T) {
	tz := MustParse("America/New_York")
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	for _, ts := range probes(2026, 2040) {
		require.Equal(t, referenceOffset(loc, ts), tz.OffsetAtTimestamp(ts))
	}
}
