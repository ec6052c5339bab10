// Package catalog maps IANA timezone names, canonical and legacy aliases, to
// compact zone identifiers.
//
// The tables live in names_gen.go, written by cmd/tzgen. Canonical names are
// kept in byte order so that an ID is the index of its name and List is
// stable across builds of the same database.
package catalog

import (
	"slices"
	"sort"
	"strconv"
	"sync"
)

// ID identifies a canonical timezone.
type ID uint16

// Valid reports whether id names a zone in the catalog.
func (id ID) Valid() bool {
	return int(id) < len(canonicalNames)
}

func (id ID) String() string {
	if !id.Valid() {
		return "catalog.ID(" + strconv.Itoa(int(id)) + ")"
	}
	return canonicalNames[id]
}

type alias struct {
	name   string
	target string
}

type index struct {
	aliases map[string]ID
	byZone  [][]string
}

var (
	indexOnce sync.Once
	idx       *index
)

func load() *index {
	indexOnce.Do(func() {
		idx = buildIndex(aliasNames[:])
	})
	return idx
}

func buildIndex(links []alias) *index {
	ix := &index{
		aliases: make(map[string]ID, len(links)),
		byZone:  make([][]string, len(canonicalNames)),
	}
	for _, l := range links {
		id, ok := lookupCanonical(l.target)
		if !ok {
			// generated data only links to canonical zones
			panic("catalog: alias " + l.name + " targets unknown zone " + l.target)
		}
		ix.aliases[l.name] = id
		ix.byZone[id] = append(ix.byZone[id], l.name)
	}
	for _, names := range ix.byZone {
		sort.Strings(names)
	}
	return ix
}

func lookupCanonical(name string) (ID, bool) {
	i, found := slices.BinarySearch(canonicalNames[:], name)
	if !found {
		return 0, false
	}
	return ID(i), true
}

// Resolve returns the zone for a canonical or alias name. Matching is exact
// and case-sensitive.
func Resolve(name string) (ID, bool) {
	if id, ok := lookupCanonical(name); ok {
		return id, true
	}
	id, ok := load().aliases[name]
	return id, ok
}

// IsCanonical reports whether name is a canonical zone name.
func IsCanonical(name string) bool {
	_, ok := lookupCanonical(name)
	return ok
}

// Name returns the canonical name of id, or "" if id is not valid.
func Name(id ID) string {
	if !id.Valid() {
		return ""
	}
	return canonicalNames[id]
}

// List returns every canonical name in catalog order.
func List() []string {
	return slices.Clone(canonicalNames[:])
}

// Len returns the number of canonical zones.
func Len() int {
	return len(canonicalNames)
}

// Aliases returns the alias names that resolve to id, sorted.
func Aliases(id ID) []string {
	if !id.Valid() {
		return nil
	}
	return slices.Clone(load().byZone[id])
}

// AliasCount returns the number of alias names.
func AliasCount() int {
	return len(aliasNames)
}
