package tzoffset

import "fmt"

// Offset is a UTC offset in minutes, positive east of Greenwich.
type Offset int16

// Seconds returns the offset in seconds.
func (o Offset) Seconds() int32 {
	return int32(o) * 60
}

// String renders the offset as ±HH:MM.
func (o Offset) String() string {
	m := int(o)
	sign := '+'
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
}
