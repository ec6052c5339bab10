package rules

// Civil calendar arithmetic on the proleptic Gregorian calendar.
// The day algorithms follow Howard Hinnant's days_from_civil/civil_from_days.
// https://howardhinnant.github.io/date_algorithms.html

const (
	SecondsPerMinute = 60
	SecondsPerDay    = 86400

	// days from 0000-03-01 to 1970-01-01
	civilEpochShift = 719468
	daysPerEra      = 146097
)

// DaysFromCivil returns the number of days since 1970-01-01 for the given
// year, month (1-12) and day of month.
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64((month + 9) % 12)
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - civilEpochShift
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int) {
	z := days + civilEpochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// YearOf returns the UTC calendar year containing the unix instant ts.
func YearOf(ts int64) int {
	y, _, _ := CivilFromDays(floorDiv(ts, SecondsPerDay))
	return y
}

// Weekday returns the day of week (0 = Sunday) of a day counted from 1970-01-01,
// which was a Thursday.
func Weekday(days int64) int {
	return int(floorMod(days+4, 7))
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
