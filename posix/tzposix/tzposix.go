package tzposix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/registry"
	"github.com/tzlist/tzoffset/rules"
)

// The main parts of a TZ string:
//  1. Standard Time Abbr (STD)
//  2. STD Offset
//  3. Optional DST Abbr (DST)
//  4. Optional DST Offset (assumed +1 hour if absent)
//  5. Optional DST Start Rule
//  6. Optional DST End Rule
var tzRegex = regexp.MustCompile(`^(?<StdName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)` +
	`(?<StdOffset>[-+]?[0-9]+(?::[0-9]+){0,2})` +
	`(?<DstName>[[:alpha:]]{3,}|<[[:alnum:]+-]+>)?` +
	`(?<DstOffset>[-+]?[0-9]+(?::[0-9]+){0,2})?` +
	`,?(?<StartRule>(?:J?[0-9]+|M[0-9]+(?:\.[0-9]+){0,2})(?:/[+-]?[0-9]+(?::[0-9]+){0,2})?)?` +
	`,?(?<EndRule>(?:J?[0-9]+|M[0-9]+(?:\.[0-9]+){0,2})(?:/[+-]?[0-9]+(?::[0-9]+){0,2})?)?$`)

// ErrNotCompact reports a TZ string whose rules have no registry form, such
// as Julian day rules.
var ErrNotCompact = errors.New("tzposix: rule has no compact form")

// RuleKind is the date form of a transition rule.
type RuleKind int

const (
	MonthWeekDay RuleKind = iota // Mm.w.d
	Julian                       // Jn, 1..365, February 29 never counted
	ZeroJulian                   // n, 0..365, February 29 counted
)

// Rule is one transition date and time of a TZ string.
type Rule struct {
	Kind    RuleKind
	Month   int // 1..12
	Week    int // 1..5, 5 is the last week
	Weekday int // 0 is Sunday
	Day     int // Julian and ZeroJulian
	Time    int // seconds after local midnight, may be negative or past 24h
}

// TZ is a decoded POSIX TZ string. Offsets are seconds east of UTC, the
// opposite sign of the string itself.
type TZ struct {
	StdName   string
	StdOffset int
	DstName   string
	DstOffset int
	Start     Rule
	End       Rule
}

// HasDST reports whether the string names a daylight saving time.
func (z TZ) HasDST() bool {
	return z.DstName != ""
}

// permanentDST matches "0/0,J365/25", DST from the first to the last
// instant of every year.
func (z TZ) permanentDST() bool {
	return z.Start == Rule{Kind: ZeroJulian, Day: 0, Time: 0} &&
		z.End == Rule{Kind: Julian, Day: 365, Time: 25 * 3600}
}

// usRules apply when a TZ string names a DST but no rules, as Go's time
// package does.
var usRules = [2]Rule{
	{Kind: MonthWeekDay, Month: 3, Week: 2, Weekday: 0, Time: 7200},
	{Kind: MonthWeekDay, Month: 11, Week: 1, Weekday: 0, Time: 7200},
}

// Parse decodes a POSIX TZ string such as "EST5EDT,M3.2.0,M11.1.0".
func Parse(posixTZ string) (TZ, error) {
	matches := tzRegex.FindStringSubmatch(posixTZ)
	if matches == nil {
		return TZ{}, fmt.Errorf("invalid POSIX TZ string format: %s", posixTZ)
	}
	stdAbbr := matches[1]
	stdOffsetStr := matches[2]
	dstAbbr := matches[3]
	dstOffsetStr := matches[4]
	startRule := matches[5]
	endRule := matches[6]

	stdOffset, err := parseOffset(stdOffsetStr)
	if err != nil {
		return TZ{}, fmt.Errorf("invalid standard offset: %w", err)
	}
	z := TZ{StdName: stdAbbr, StdOffset: -stdOffset}
	if dstAbbr == "" {
		if startRule != "" || endRule != "" {
			return TZ{}, fmt.Errorf("rules without a daylight time: %s", posixTZ)
		}
		return z, nil
	}
	if (startRule == "") != (endRule == "") {
		return TZ{}, fmt.Errorf("stand alone TZ rule: %s", posixTZ)
	}

	// Calculate DST offset if not explicitly provided (POSIX default is 1 hour ahead)
	dstOffset := stdOffset - 3600
	if dstOffsetStr != "" {
		dstOffset, err = parseOffset(dstOffsetStr)
		if err != nil {
			return TZ{}, fmt.Errorf("invalid daylight offset: %w", err)
		}
	}
	z.DstName = dstAbbr
	z.DstOffset = -dstOffset

	if startRule == "" {
		z.Start, z.End = usRules[0], usRules[1]
		return z, nil
	}
	if z.Start, err = parseRule(startRule); err != nil {
		return TZ{}, fmt.Errorf("invalid start rule: %w", err)
	}
	if z.End, err = parseRule(endRule); err != nil {
		return TZ{}, fmt.Errorf("invalid end rule: %w", err)
	}
	return z, nil
}

// ParseRuleSet decodes a TZ string into a registry rule set valid from the
// epoch. Offsets with seconds are truncated toward zero to minutes.
// Strings whose rules have no compact form return ErrNotCompact.
func ParseRuleSet(posixTZ string) (registry.RuleSet, error) {
	z, err := Parse(posixTZ)
	if err != nil {
		return registry.RuleSet{}, err
	}
	if !z.HasDST() {
		return registry.RuleSet{StdOffset: int16(z.StdOffset / 60)}, nil
	}
	if z.permanentDST() {
		return registry.RuleSet{StdOffset: int16(z.DstOffset / 60)}, nil
	}
	delta := (z.DstOffset - z.StdOffset) / 60
	if delta == 0 {
		return registry.RuleSet{}, errors.Wrapf(ErrNotCompact, "%s has a zero daylight delta", posixTZ)
	}
	start, err := compactRule(z.Start, rules.Standard)
	if err != nil {
		return registry.RuleSet{}, errors.WithMessage(err, posixTZ)
	}
	end, err := compactRule(z.End, rules.Daylight)
	if err != nil {
		return registry.RuleSet{}, errors.WithMessage(err, posixTZ)
	}
	return registry.RuleSet{
		StdOffset: int16(z.StdOffset / 60),
		DST:       &rules.DSTRule{DeltaMinutes: int16(delta), Start: start, End: end},
	}, nil
}

func compactRule(r Rule, basis rules.Basis) (rules.TransitionRule, error) {
	if r.Kind != MonthWeekDay {
		return rules.TransitionRule{}, errors.Wrap(ErrNotCompact, "julian day rule")
	}
	if r.Time%60 != 0 {
		return rules.TransitionRule{}, errors.Wrapf(ErrNotCompact, "transition time %ds is not whole minutes", r.Time)
	}
	tr := rules.TransitionRule{
		Month:   uint8(r.Month),
		Week:    rules.Week(r.Week),
		Weekday: uint8(r.Weekday),
		Minutes: int16(r.Time / 60),
		Basis:   basis,
	}
	if !tr.Valid() {
		return rules.TransitionRule{}, errors.Wrapf(ErrNotCompact, "rule M%d.%d.%d", r.Month, r.Week, r.Weekday)
	}
	return tr, nil
}

// DecodeTZ returns one line descriptions of the standard time, the daylight
// time and the rules. The last two are empty for zones without DST.
func DecodeTZ(posixTZ string) (string, string, string, error) {
	z, err := Parse(posixTZ)
	if err != nil {
		return "", "", "", err
	}
	stdDesc := fmt.Sprintf("%s (UTC%s)", z.StdName, formatOffset(-z.StdOffset))
	if !z.HasDST() {
		return stdDesc, "", "", nil
	}
	dstDesc := fmt.Sprintf("%s (UTC%s)", z.DstName, formatOffset(-z.DstOffset))
	rulesDesc := fmt.Sprintf("Starts %s, Ends %s", describeRule(z.Start), describeRule(z.End))
	return stdDesc, dstDesc, rulesDesc, nil
}

// HumanReadableTZ parses a POSIX TZ string and returns a human-readable description.
// It handles a common format like "EST5EDT,M3.2.0/02:00:00,M11.1.0/02:00:00"
func HumanReadableTZ(posixTZ string) (string, error) {
	stdDesc, dstDesc, rulesDesc, err := DecodeTZ(posixTZ)
	if err != nil {
		return "", err
	}
	if dstDesc == "" {
		return "Standard Time: " + stdDesc + "\n(No Daylight Saving Time rules)", nil
	}
	return fmt.Sprintf("Standard Time: %s\nDaylight Time: %s\nRules: %s", stdDesc, dstDesc, rulesDesc), nil
}

// parseOffset converts a signed [+-]hh[:mm[:ss]] string to seconds.
// TZ offsets are West of Greenwich, opposite of ISO 8601: "EST5" is UTC-5.
func parseOffset(offsetStr string) (int, error) {
	sign := 1
	if strings.HasPrefix(offsetStr, "+") {
		offsetStr = strings.TrimPrefix(offsetStr, "+")
	} else if strings.HasPrefix(offsetStr, "-") {
		offsetStr = strings.TrimPrefix(offsetStr, "-")
		sign = -1
	}

	parts := strings.Split(offsetStr, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("too many fields in %q", offsetStr)
	}
	total := 0
	for i, unit := range []int{3600, 60, 1}[:len(parts)] {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, err
		}
		if i > 0 && v > 59 {
			return 0, fmt.Errorf("field %d of %q out of range", v, offsetStr)
		}
		total += v * unit
	}
	return sign * total, nil
}

// formatOffset converts seconds west of UTC to a " +H:M" or " -H:M" string
func formatOffset(offsetSeconds int) string {
	sign := "+"
	if offsetSeconds > 0 {
		sign = "-" // POSIX is backwards, so >0 seconds is actually UTC-X
	}
	absOffset := offsetSeconds
	if absOffset < 0 {
		absOffset = -absOffset
	}

	hours := absOffset / 3600
	minutes := (absOffset % 3600) / 60
	seconds := (absOffset % 3600) % 60
	if seconds != 0 {
		return fmt.Sprintf(" %s%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf(" %s%02d:%02d", sign, hours, minutes)
}

// parseRule decodes "Mm.w.d", "Jn" or "n", each with an optional "/time".
func parseRule(rule string) (Rule, error) {
	r := Rule{Time: 7200}
	date, timeStr, hasTime := strings.Cut(rule, "/")
	if hasTime {
		t, err := parseOffset(timeStr)
		if err != nil {
			return Rule{}, fmt.Errorf("invalid time %q: %w", timeStr, err)
		}
		r.Time = t
	}

	switch {
	case strings.HasPrefix(date, "M"):
		parts := strings.Split(strings.TrimPrefix(date, "M"), ".")
		if len(parts) != 3 {
			return Rule{}, fmt.Errorf("malformed rule %q", rule)
		}
		r.Kind = MonthWeekDay
		r.Month, r.Week, r.Weekday = atoi(parts[0]), atoi(parts[1]), atoi(parts[2])
		if r.Month < 1 || r.Month > 12 || r.Week < 1 || r.Week > 5 || r.Weekday < 0 || r.Weekday > 6 {
			return Rule{}, fmt.Errorf("rule %q out of range", rule)
		}
	case strings.HasPrefix(date, "J"):
		r.Kind = Julian
		r.Day = atoi(strings.TrimPrefix(date, "J"))
		if r.Day < 1 || r.Day > 365 {
			return Rule{}, fmt.Errorf("julian day %q out of range", rule)
		}
	default:
		r.Kind = ZeroJulian
		r.Day = atoi(date)
		if r.Day < 0 || r.Day > 365 {
			return Rule{}, fmt.Errorf("day %q out of range", rule)
		}
	}
	return r, nil
}

var (
	months   = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	weekDesc = []string{"", "first", "second", "third", "fourth", "last"}
	dayDesc  = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// describeRule converts a rule to a phrase such as
// "on the second Sunday of March at 02:00:00".
func describeRule(r Rule) string {
	switch r.Kind {
	case Julian:
		if r.Day == 365 && r.Time == 25*3600 {
			return "at the end of the year"
		}
		return fmt.Sprintf("on Julian Day %d at %s", r.Day, describeTime(r.Time))
	case ZeroJulian:
		if r.Day == 0 && r.Time == 0 {
			return "from the start of the year"
		}
		return fmt.Sprintf("on day %d of the year at %s", r.Day, describeTime(r.Time))
	}
	return fmt.Sprintf("on the %s %s of %s at %s",
		weekDesc[r.Week], dayDesc[r.Weekday], months[r.Month-1], describeTime(r.Time))
}

// describeTime renders a rule time. Times outside a day, like Jerusalem's
// /26 or Gaza's /50, move the change to another day.
func describeTime(secs int) string {
	const day = 86400
	if secs == day {
		return "midnight of the next day"
	}
	days := secs / day
	rem := secs % day
	if rem < 0 {
		rem += day
		days--
	}
	clock := time.Date(0, 1, 1, 0, 0, rem, 0, time.UTC).Format("15:04:05")
	switch days {
	case 0:
		return clock
	case 1:
		return clock + " on the following day"
	case -1:
		return clock + " on the previous day"
	}
	if days > 0 {
		return fmt.Sprintf("%s %d days later", clock, days)
	}
	return fmt.Sprintf("%s %d days earlier", clock, -days)
}

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return -1
}
