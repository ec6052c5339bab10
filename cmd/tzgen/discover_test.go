package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleZI = `# version 2025b
# This zic input file is in the public domain.
R u 1967 2006 - O lastSu 2 0 S
Z America/New_York -4:56:2 - LMT 1883 N 18 17u
-5 u E%sT
Z Etc/UTC 0 - UTC
Z Factory 0 - -00
Z Australia/Sydney 10:4:52 - LMT 1895 F
10 AU AE%sT
L America/New_York US/Eastern
L Etc/UTC Etc/UCT
L Etc/UTC Zulu
L Missing/Zone Dangling
L Australia/Sydney Australia/ACT
`

func TestReadZI(t *testing.T) {
	src, err := readZI(strings.NewReader(sampleZI))
	require.NoError(t, err)
	require.Equal(t, "2025b", src.version)
	require.Equal(t, []string{"America/New_York", "Etc/UTC", "Factory", "Australia/Sydney"}, src.zones)
	require.Len(t, src.links, 5)
	require.Equal(t, link{target: "America/New_York", alias: "US/Eastern"}, src.links[0])

	_, err = readZI(strings.NewReader("# empty\n"))
	require.Error(t, err)
}

func TestBuildNames(t *testing.T) {
	src, err := readZI(strings.NewReader(sampleZI))
	require.NoError(t, err)

	n := buildNames(src, []string{"Factory"})
	require.Equal(t, []string{"America/New_York", "Australia/Sydney", "UTC"}, n.canonical)
	require.Equal(t, map[string]string{
		"US/Eastern":    "America/New_York",
		"Etc/UCT":       "UTC",
		"Zulu":          "UTC",
		"Australia/ACT": "Australia/Sydney",
		"Etc/UTC":       "UTC",
	}, n.aliases)

	require.Equal(t, "Etc/UTC", zoneFile("UTC"))
	require.Equal(t, "Europe/Paris", zoneFile("Europe/Paris"))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tzgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
zoneinfo_dir: /opt/zoneinfo
always_historical: [Asia/Gaza]
floor: -86400
compression_level: fastest
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/zoneinfo", cfg.ZoneinfoDir)
	require.Equal(t, int64(-86400), cfg.Floor)
	require.True(t, cfg.isAlwaysHistorical("Asia/Gaza"))
	require.False(t, cfg.isAlwaysHistorical("Africa/Casablanca"))
	require.Equal(t, []string{"Factory"}, cfg.Exclude)
	require.Equal(t, "historical/data/history.bin", cfg.Output.History)

	require.NoError(t, os.WriteFile(path, []byte("compression_level: turbo\n"), 0o644))
	_, err = loadConfig(path)
	require.Error(t, err)
}

func TestCheckedInConfig(t *testing.T) {
	cfg, err := loadConfig("tzgen.yaml")
	require.NoError(t, err)
	require.True(t, cfg.isAlwaysHistorical("Africa/Casablanca"))
	require.Equal(t, "catalog/names_gen.go", cfg.Output.Catalog)
}
