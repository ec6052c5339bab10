package historical

import "sort"

// Transition is an instant at which a zone's offset changes.
type Transition struct {
	At     int64 // unix seconds
	Offset int16 // minutes east of UTC from At on
}

// Table is a zone's ascending, duplicate free list of transitions. The
// offset at ts is that of the last transition with At <= ts.
type Table []Transition

// Lookup returns the offset in effect at ts. Instants before the first
// transition get the first transition's offset.
func (t Table) Lookup(ts int64) int16 {
	if len(t) == 0 {
		return 0
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].At > ts })
	if i == 0 {
		return t[0].Offset
	}
	return t[i-1].Offset
}

// Span returns the first and last transition instants.
func (t Table) Span() (first, last int64) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].At, t[len(t)-1].At
}

func (t Table) ascending() bool {
	for i := 1; i < len(t); i++ {
		if t[i].At <= t[i-1].At {
			return false
		}
	}
	return true
}
