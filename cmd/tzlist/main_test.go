package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/caarlos0/env/v9"
	"github.com/stretchr/testify/require"
	"github.com/tzlist/tzoffset"
	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/registry"
)

func TestParseInstant(t *testing.T) {
	var tests = []struct {
		in   string
		want int64
	}{
		{"1704067200", 1704067200},
		{"-86400", -86400},
		{"2024-01-01T00:00:00Z", 1704067200},
		{"2024-01-01T00:00:00-05:00", 1704085200},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseInstant(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
	_, err := parseInstant("yesterday")
	require.Error(t, err)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("TZLIST_LOGLEVEL", "debug")
	t.Setenv("TZLIST_HISTORY_FILE", "/tmp/history.bin")

	var cfg Config
	require.NoError(t, env.Parse(&cfg))
	require.Equal(t, Config{LogLevel: "debug", HistoryFile: "/tmp/history.bin", JSONFile: "scheduler.json"}, cfg)
}

func TestQueryZones(t *testing.T) {
	var out bytes.Buffer
	e := tzoffset.NewEngine()
	require.NoError(t, QueryZones(&out, e, []string{"US/Eastern", "Asia/Kolkata"}, 1704067200, true))
	require.Equal(t,
		"America/New_York 2024-01-01T00:00:00Z -05:00 (-300) via compact path\n"+
			"Asia/Kolkata 2024-01-01T00:00:00Z +05:30 (330) via compact path\n",
		out.String())

	out.Reset()
	require.NoError(t, QueryZones(&out, e, []string{"America/New_York"}, 1151755200, true))
	require.Equal(t, "America/New_York 2006-07-01T12:00:00Z -04:00 (-240) via historical path\n", out.String())

	require.ErrorIs(t, QueryZones(&out, e, []string{"Not/AZone"}, 0, false), tzoffset.ErrInvalidTimezoneName)
}

func TestGenerateJson(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, GenerateJson(&out, registry.Default(), "slices"))

	var zones []SchedulerJson
	require.NoError(t, json.Unmarshal(out.Bytes(), &zones))
	var ny SchedulerJson
	for _, z := range zones {
		if z.Name == "America/New_York" {
			ny = z
		}
	}
	require.True(t, ny.HasDst)
	require.Equal(t, "<-05> (UTC -05:00)", ny.Std)
	require.Equal(t, "<-04> (UTC -04:00)", ny.Dst)
	require.Contains(t, ny.Aliases, "US/Eastern")
	require.Equal(t, "Starts on the second Sunday of March at 02:00:00, Ends on the first Sunday of November at 02:00:00", ny.Rules)

	out.Reset()
	require.NoError(t, GenerateJson(&out, registry.Default(), "objects"))
	var objects map[string]SchedulerJson
	require.NoError(t, json.Unmarshal(out.Bytes(), &objects))
	require.False(t, objects["Asia/Tokyo"].HasDst)
	require.Empty(t, objects["Asia/Tokyo"].Name)

	require.Error(t, GenerateJson(&out, registry.Default(), "xml"))
}

func TestListZones(t *testing.T) {
	var out bytes.Buffer
	ListZones(&out, registry.Default())
	text := out.String()
	require.Contains(t, text, "Standard Time: <+0530> (UTC +05:30)")
	require.Contains(t, text, "(Offsets follow the historical record only)")
	require.True(t, strings.HasPrefix(text, "Africa/Abidjan"))
}

func TestPrintMetrics(t *testing.T) {
	store := historical.NewStore(historical.EmbeddedLoader())
	e := tzoffset.NewEngine(tzoffset.WithStore(store))
	_, err := e.OffsetAt(tzoffset.MustParse("Europe/Paris"), 0)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrintMetrics(&out, store))
	require.Equal(t,
		"tzoffset_historical_load_failures_total 0\n"+
			"tzoffset_historical_loads_total 1\n"+
			"tzoffset_historical_resident_zones 1\n",
		out.String())
}

func TestNewStoreFromFile(t *testing.T) {
	_, err := newStore(Config{HistoryFile: "/nonexistent/history.bin"})
	require.Error(t, err)

	store, err := newStore(Config{HistoryFile: "../../historical/data/history.bin"})
	require.NoError(t, err)
	off, err := tzoffset.NewEngine(tzoffset.WithStore(store)).OffsetAt(tzoffset.MustParse("America/New_York"), 1151755200)
	require.NoError(t, err)
	require.Equal(t, int16(-240), off)
}
