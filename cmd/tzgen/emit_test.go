package main

import (
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/registry"
	"github.com/tzlist/tzoffset/rules"
)

func TestRenderNames(t *testing.T) {
	n := names{
		canonical: []string{"America/New_York", "UTC"},
		aliases:   map[string]string{"Zulu": "UTC", "US/Eastern": "America/New_York"},
	}
	src, err := renderNames("2025b", n)
	require.NoError(t, err)
	out := string(src)
	require.Contains(t, out, "// Code generated by tzgen from tzdata 2025b; DO NOT EDIT.")
	require.Contains(t, out, "const UTC ID = 1\n")
	require.Contains(t, out, "\t\"America/New_York\",\n")
	require.Contains(t, out, "\t{\"US/Eastern\", \"America/New_York\"},\n\t{\"Zulu\", \"UTC\"},\n")

	_, err = renderNames("x", names{canonical: []string{"Europe/Paris"}})
	require.Error(t, err)
}

func TestRuleSetExpr(t *testing.T) {
	ny := registry.RuleSet{
		StdOffset: -300,
		ValidFrom: 1173596400,
		DST: &rules.DSTRule{
			DeltaMinutes: 60,
			Start:        rules.TransitionRule{Month: 3, Week: rules.Second, Minutes: 120},
			End:          rules.TransitionRule{Month: 11, Week: rules.First, Minutes: 120, Basis: rules.Daylight},
		},
	}
	require.Equal(t, "seasonal(-300, 1173596400, dst(60, startsOn(3, rules.Second, 0, 120), endsOn(11, rules.First, 0, 120)))", ruleSetExpr(ny))
	require.Equal(t, "fixed(330, 0)", ruleSetExpr(registry.RuleSet{StdOffset: 330}))
	require.Equal(t, "constant(0)", ruleSetExpr(registry.RuleSet{ValidFrom: registry.AlwaysValid}))
	require.Equal(t, "historicalOnly(60)", ruleSetExpr(registry.RuleSet{StdOffset: 60, AlwaysHistorical: true, ValidFrom: registry.NeverValid}))
}

func TestRenderRules(t *testing.T) {
	src, err := renderRules("2025b", []zoneData{
		{name: "Asia/Kolkata", rules: registry.RuleSet{StdOffset: 330, ValidFrom: registry.AlwaysValid}},
		{name: "Africa/Casablanca", rules: registry.RuleSet{StdOffset: 60, AlwaysHistorical: true}},
	})
	require.NoError(t, err)
	require.Contains(t, string(src), "\t// Asia/Kolkata\n\tconstant(330),\n\t// Africa/Casablanca\n\thistoricalOnly(60),\n")
}

func TestBuildHistory(t *testing.T) {
	zones := []zoneData{
		{name: "A", table: historical.Table{{At: 0, Offset: 0}}},
		{name: "B", table: historical.Table{{At: 0, Offset: 60}, {At: 100, Offset: 120}}},
	}
	blob, raw, err := buildHistory(zones, zstd.SpeedFastest)
	require.NoError(t, err)
	require.Equal(t, 30, raw)

	src, err := historical.ParseBlob(blob)
	require.NoError(t, err)
	frame, err := src.CompressedBytesFor(1)
	require.NoError(t, err)
	tbl, err := historical.Decompress(frame)
	require.NoError(t, err)
	require.Equal(t, zones[1].table, tbl)
}
