package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	require.Equal(t, 446, Len())
	require.Equal(t, 151, AliasCount())
	require.Equal(t, "UTC", UTC.String())
}

func TestResolve(t *testing.T) {
	var tests = []struct {
		name string
		want string
		ok   bool
	}{
		{"America/New_York", "America/New_York", true},
		{"US/Eastern", "America/New_York", true},
		{"Asia/Calcutta", "Asia/Kolkata", true},
		{"Etc/UTC", "UTC", true},
		{"Zulu", "UTC", true},
		{"UTC", "UTC", true},
		{"america/new_york", "", false},
		{"", "", false},
		{"Mars/Olympus_Mons", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Resolve(tt.name)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, Name(id))
			}
		})
	}
}

func TestIsCanonical(t *testing.T) {
	require.True(t, IsCanonical("Europe/Paris"))
	require.False(t, IsCanonical("US/Eastern"))
	require.False(t, IsCanonical("Etc/UTC"))
}

func TestListIsSortedAndCopied(t *testing.T) {
	names := List()
	require.Len(t, names, Len())
	require.True(t, sort.StringsAreSorted(names))
	for i, name := range names {
		id, ok := Resolve(name)
		require.True(t, ok, name)
		require.Equal(t, ID(i), id)
	}

	names[0] = "changed"
	require.Equal(t, "Africa/Abidjan", List()[0])
}

func TestAliases(t *testing.T) {
	require.Equal(t, []string{"Etc/UCT", "Etc/UTC", "Etc/Universal", "Etc/Zulu", "UCT", "Universal", "Zulu"}, Aliases(UTC))

	ny, _ := Resolve("America/New_York")
	require.Contains(t, Aliases(ny), "US/Eastern")
	require.Nil(t, Aliases(ID(Len())))

	seen := 0
	for i := range Len() {
		for _, a := range Aliases(ID(i)) {
			require.False(t, IsCanonical(a), a)
			seen++
		}
	}
	require.Equal(t, AliasCount(), seen)
}

func TestInvalidID(t *testing.T) {
	id := ID(Len())
	require.False(t, id.Valid())
	require.Empty(t, Name(id))
	require.Equal(t, "catalog.ID(446)", id.String())
}

func TestBuildIndexRejectsDanglingAlias(t *testing.T) {
	require.Panics(t, func() {
		buildIndex([]alias{{name: "Nowhere/Town", target: "Nowhere/City"}})
	})
}
