package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d, h, mi int) int64 {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC).Unix()
}

var usEastern = DSTRule{
	DeltaMinutes: 60,
	Start:        TransitionRule{Month: 3, Week: Second, Weekday: 0, Minutes: 120, Basis: Standard},
	End:          TransitionRule{Month: 11, Week: First, Weekday: 0, Minutes: 120, Basis: Daylight},
}

var sydney = DSTRule{
	DeltaMinutes: 60,
	Start:        TransitionRule{Month: 10, Week: First, Weekday: 0, Minutes: 120, Basis: Standard},
	End:          TransitionRule{Month: 4, Week: First, Weekday: 0, Minutes: 180, Basis: Daylight},
}

func TestCivilRoundTrip(t *testing.T) {
	for days := int64(-800000); days < 800000; days += 997 {
		y, m, d := CivilFromDays(days)
		require.Equal(t, days, DaysFromCivil(y, m, d), "%04d-%02d-%02d", y, m, d)
	}
}

func TestCivilAgainstTime(t *testing.T) {
	var tests = []struct {
		y, m, d int
	}{
		{1970, 1, 1}, {1969, 12, 31}, {2000, 2, 29}, {2000, 3, 1},
		{1600, 1, 1}, {2024, 12, 31}, {2100, 3, 1}, {1900, 2, 28},
	}
	for _, tt := range tests {
		want := time.Date(tt.y, time.Month(tt.m), tt.d, 0, 0, 0, 0, time.UTC).Unix() / SecondsPerDay
		got := DaysFromCivil(tt.y, tt.m, tt.d)
		require.Equal(t, want, got)
		wantWd := int(time.Date(tt.y, time.Month(tt.m), tt.d, 0, 0, 0, 0, time.UTC).Weekday())
		require.Equal(t, wantWd, Weekday(got))
	}
}

func TestYearOf(t *testing.T) {
	require.Equal(t, 1970, YearOf(0))
	require.Equal(t, 1969, YearOf(-1))
	require.Equal(t, 2023, YearOf(utc(2023, 12, 31, 23, 59)))
	require.Equal(t, 2024, YearOf(utc(2024, 1, 1, 0, 0)))
}

func TestDaysInMonth(t *testing.T) {
	require.Equal(t, 29, DaysInMonth(2024, 2))
	require.Equal(t, 28, DaysInMonth(1900, 2))
	require.Equal(t, 29, DaysInMonth(2000, 2))
	require.Equal(t, 30, DaysInMonth(2024, 11))
	require.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestResolveInstant(t *testing.T) {
	var tests = []struct {
		name  string
		rule  TransitionRule
		year  int
		basis int
		want  int64
	}{
		{"us start 2024", usEastern.Start, 2024, -300, utc(2024, 3, 10, 7, 0)},
		{"us end 2024", usEastern.End, 2024, -240, utc(2024, 11, 3, 6, 0)},
		{"eu end last sunday", TransitionRule{Month: 10, Week: Last, Weekday: 0, Minutes: 60}, 2024, 0, utc(2024, 10, 27, 1, 0)},
		// February 2015 has exactly four Sundays; "last" is the fourth.
		{"last in four week month", TransitionRule{Month: 2, Week: Last, Weekday: 0}, 2015, 0, utc(2015, 2, 22, 0, 0)},
		// March 2015 has five Sundays.
		{"last in five week month", TransitionRule{Month: 3, Week: Last, Weekday: 0}, 2015, 0, utc(2015, 3, 29, 0, 0)},
		{"hour 26", TransitionRule{Month: 3, Week: Fourth, Weekday: 4, Minutes: 26 * 60}, 2024, 120, utc(2024, 3, 29, 0, 0)},
		{"negative time", TransitionRule{Month: 3, Week: Last, Weekday: 6, Minutes: -60}, 2024, -120, utc(2024, 3, 30, 1, 0)},
		{"half hour basis", TransitionRule{Month: 4, Week: First, Weekday: 0, Minutes: 120}, 2024, 660, utc(2024, 4, 6, 15, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveInstant(tt.rule, tt.year, tt.basis))
		})
	}
}

func TestActiveNorthern(t *testing.T) {
	start, end := usEastern.Bounds(2024, -300)
	require.False(t, usEastern.Active(start-1, -300))
	require.True(t, usEastern.Active(start, -300))
	require.True(t, usEastern.Active(end-1, -300))
	require.False(t, usEastern.Active(end, -300))
	require.Equal(t, -300, usEastern.Offset(utc(2024, 1, 1, 0, 0), -300))
	require.Equal(t, -240, usEastern.Offset(utc(2024, 7, 3, 0, 0), -300))
	require.False(t, usEastern.Spans())
}

func TestActiveSouthernSpan(t *testing.T) {
	require.True(t, sydney.Spans())
	// DST runs from October into April of the following year.
	require.Equal(t, 660, sydney.Offset(utc(2023, 12, 31, 23, 0), 600))
	require.Equal(t, 660, sydney.Offset(utc(2024, 1, 1, 0, 0), 600))
	require.Equal(t, 600, sydney.Offset(utc(2024, 6, 1, 0, 0), 600))

	_, end := sydney.Bounds(2024, 600)
	require.Equal(t, utc(2024, 4, 6, 16, 0), end)
	require.True(t, sydney.Active(end-1, 600))
	require.False(t, sydney.Active(end, 600))
}

func TestActiveYearBoundary(t *testing.T) {
	// A start rule for 2023 that lands in 2022 once converted to UTC.
	rule := DSTRule{
		DeltaMinutes: 60,
		Start:        TransitionRule{Month: 1, Week: First, Weekday: 0, Minutes: 30, Basis: Standard},
		End:          TransitionRule{Month: 10, Week: Last, Weekday: 0, Minutes: 120, Basis: Daylight},
	}
	start, _ := rule.Bounds(2023, 840)
	require.Equal(t, utc(2022, 12, 31, 10, 30), start)
	require.Equal(t, 840, rule.Offset(start-1, 840))
	require.Equal(t, 900, rule.Offset(start, 840))
	require.Equal(t, 900, rule.Offset(utc(2022, 12, 31, 12, 0), 840))
}

func TestNegativeDelta(t *testing.T) {
	// Europe/Dublin: IST-1GMT0,M10.5.0,M3.5.0/1
	dublin := DSTRule{
		DeltaMinutes: -60,
		Start:        TransitionRule{Month: 10, Week: Last, Weekday: 0, Minutes: 120, Basis: Standard},
		End:          TransitionRule{Month: 3, Week: Last, Weekday: 0, Minutes: 60, Basis: Daylight},
	}
	require.Equal(t, 0, dublin.Offset(utc(2024, 1, 15, 12, 0), 60))
	require.Equal(t, 60, dublin.Offset(utc(2024, 7, 15, 12, 0), 60))
	require.Equal(t, 60, dublin.Offset(utc(2024, 10, 27, 0, 59), 60))
	require.Equal(t, 0, dublin.Offset(utc(2024, 10, 27, 1, 0), 60))
}

func TestTransitions(t *testing.T) {
	got := usEastern.Transitions(utc(2024, 1, 1, 0, 0), utc(2025, 1, 1, 0, 0), -300)
	require.Equal(t, []Transition{
		{At: utc(2024, 3, 10, 7, 0), OffsetMinutes: -240, DST: true},
		{At: utc(2024, 11, 3, 6, 0), OffsetMinutes: -300},
	}, got)

	got = sydney.Transitions(utc(2024, 1, 1, 0, 0), utc(2025, 1, 1, 0, 0), 600)
	require.Len(t, got, 2)
	require.False(t, got[0].DST)
	require.True(t, got[1].DST)
	require.Less(t, got[0].At, got[1].At)

	require.Nil(t, usEastern.Transitions(10, 10, -300))
}

func TestTransitionRuleValid(t *testing.T) {
	require.True(t, usEastern.Start.Valid())
	require.False(t, TransitionRule{Month: 13, Week: First}.Valid())
	require.False(t, TransitionRule{Month: 1, Week: 0}.Valid())
	require.False(t, TransitionRule{Month: 1, Week: Last, Weekday: 7}.Valid())
	require.Equal(t, "last", Last.String())
	require.Equal(t, "Week(9)", Week(9).String())
}
