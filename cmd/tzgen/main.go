// Command tzgen builds the catalog, the compact rule tables and the
// compressed historical blob from a compiled zoneinfo directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/tzlist/tzoffset/internal/logging"
	"github.com/tzlist/tzoffset/posix/tzposix"
	"github.com/tzlist/tzoffset/rfc9636"
)

func main() {
	pflag.FuncP("loglevel", "l", "Set loglevel to trace, debug, info, warning, error or fatal", logging.SetLevel)
	configPath := pflag.StringP("config", "c", "", "YAML configuration file")
	zoneinfoDir := pflag.String("zoneinfo", "", "compiled zoneinfo directory (overrides zoneinfo_dir)")
	tzdataZi := pflag.String("tzdata", "", "tzdata.zi file (overrides tzdata_zi)")
	floor := pflag.Int64("floor", 0, "first instant of the historical tables (overrides floor)")
	level := pflag.String("level", "", "zstd level: fastest, default, better or best (overrides compression_level)")
	dryRun := pflag.BoolP("dry-run", "n", false, "build everything but write nothing")
	dump := pflag.String("dump", "", "print the TZif contents and footer of one zone and exit")
	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logging.Fatal("Could not load configuration", "error", err)
	}
	if pflag.CommandLine.Changed("zoneinfo") {
		cfg.ZoneinfoDir = *zoneinfoDir
	}
	if pflag.CommandLine.Changed("tzdata") {
		cfg.TzdataZi = *tzdataZi
	}
	if pflag.CommandLine.Changed("floor") {
		cfg.Floor = *floor
	}
	if pflag.CommandLine.Changed("level") {
		cfg.CompressionLevel = *level
	}
	if err := cfg.validate(); err != nil {
		logging.Fatal("Invalid configuration", "error", err)
	}

	if *dump != "" {
		if err := dumpZone(cfg, *dump); err != nil {
			logging.Fatal("Dump failed", "zone", *dump, "error", err)
		}
		return
	}
	if err := run(cfg, *dryRun); err != nil {
		logging.Fatal("Generation failed", "error", err)
	}
}

func run(cfg Config, dryRun bool) error {
	start := time.Now()
	src, err := loadSource(cfg)
	if err != nil {
		return err
	}
	n := buildNames(src, cfg.Exclude)
	slog.Info("Catalog", "version", src.version, "zones", len(n.canonical), "aliases", len(n.aliases))

	zones := make([]zoneData, len(n.canonical))
	for i, name := range n.canonical {
		loc, err := rfc9636.LoadLocation(zoneFile(name), []string{cfg.ZoneinfoDir})
		if err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
		if logging.Enabled(logging.LevelTrace) {
			loc.Dump(os.Stderr)
		}
		z, err := buildZone(name, loc, cfg.Floor, cfg.isAlwaysHistorical(name))
		if err != nil {
			return err
		}
		slog.Debug("Zone", "name", name, "validFrom", z.rules.ValidFrom, "transitions", len(z.table), "posix", z.rules.POSIX())
		zones[i] = z
	}

	version := src.version
	if version == "" {
		version = "unknown"
	}
	namesSrc, err := renderNames(version, n)
	if err != nil {
		return err
	}
	rulesSrc, err := renderRules(version, zones)
	if err != nil {
		return err
	}
	level, err := cfg.encoderLevel()
	if err != nil {
		return err
	}
	blob, raw, err := buildHistory(zones, level)
	if err != nil {
		return err
	}
	slog.Info("Historical blob", "raw", raw, "compressed", len(blob), "elapsed", time.Since(start))

	if dryRun {
		return nil
	}
	for _, out := range []struct {
		path string
		data []byte
	}{
		{cfg.Output.Catalog, namesSrc},
		{cfg.Output.Registry, rulesSrc},
		{cfg.Output.History, blob},
	} {
		if err := writeFile(out.path, out.data); err != nil {
			return err
		}
		slog.Info("Wrote", "path", out.path, "bytes", len(out.data))
	}
	return nil
}

func dumpZone(cfg Config, name string) error {
	loc, err := rfc9636.LoadLocation(zoneFile(name), []string{cfg.ZoneinfoDir})
	if err != nil {
		return err
	}
	loc.Dump(os.Stdout)
	description, err := tzposix.HumanReadableTZ(loc.Extend())
	if err != nil {
		return err
	}
	fmt.Println(description)

	z, err := buildZone(name, loc, cfg.Floor, cfg.isAlwaysHistorical(name))
	if err != nil {
		return err
	}
	fmt.Printf("Compact: %s from %d (always historical %v)\n", z.rules.POSIX(), z.rules.ValidFrom, z.rules.AlwaysHistorical)
	for _, tr := range z.table {
		fmt.Printf("  %d %s %d\n", tr.At, time.Unix(tr.At, 0).UTC().Format(time.RFC3339), tr.Offset)
	}
	return nil
}
