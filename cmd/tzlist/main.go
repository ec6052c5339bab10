package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/tzlist/tzoffset"
	"github.com/tzlist/tzoffset/catalog"
	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/internal/logging"
	"github.com/tzlist/tzoffset/metrics"
	"github.com/tzlist/tzoffset/posix/tzposix"
	"github.com/tzlist/tzoffset/registry"
)

type SchedulerJson struct {
	Name    string   `json:"Name,omitempty"`
	HasDst  bool     `json:"HasDst"`
	Std     string   `json:"Std"`
	Dst     string   `json:"Dst,omitempty"`
	Aliases []string `json:"Aliases,omitempty"`
	Rules   string   `json:"Rules,omitempty"`
}

// Config is read from the environment; flags override it.
type Config struct {
	LogLevel    string `env:"TZLIST_LOGLEVEL"`
	HistoryFile string `env:"TZLIST_HISTORY_FILE"`
	JSONFile    string `env:"TZLIST_JSON" envDefault:"scheduler.json"`
}

func NewSchedulerJson(name string, rs *registry.RuleSet, aliases []string) (SchedulerJson, error) {
	std, dst, rules, err := tzposix.DecodeTZ(rs.POSIX())
	if err != nil {
		return SchedulerJson{}, err
	}
	return SchedulerJson{
		Name:    name,
		HasDst:  rs.HasDST(),
		Std:     std,
		Dst:     dst,
		Aliases: aliases,
		Rules:   rules,
	}, nil
}

// GenerateJson writes the scheduler export, either as a list ("slices") or
// keyed by zone name ("objects").
func GenerateJson(w io.Writer, reg *registry.Registry, format string) error {
	if format != "slices" && format != "objects" {
		return errors.Errorf("unknown JSON format %q", format)
	}
	slice := make([]SchedulerJson, 0, catalog.Len())
	objects := make(map[string]SchedulerJson, catalog.Len())
	for i, name := range catalog.List() {
		id := catalog.ID(i)
		name := name
		if format == "objects" {
			name = ""
		}
		zj, err := NewSchedulerJson(name, reg.Get(id), catalog.Aliases(id))
		if err != nil {
			slog.Error("DecodeTZ failure", "zone", id.String(), "error", err)
			continue
		}
		if format == "objects" {
			objects[id.String()] = zj
		} else {
			slice = append(slice, zj)
		}
	}

	var data any = slice
	if format == "objects" {
		data = objects
	}
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal JSON")
	}
	_, err = w.Write(append(jsonData, '\n'))
	return err
}

func SupportsDST(rs *registry.RuleSet) string {
	if rs.HasDST() {
		return "yes"
	}
	return "no"
}

// ListZones prints every canonical zone with its aliases and rules.
func ListZones(w io.Writer, reg *registry.Registry) {
	keylen := 0
	for _, name := range catalog.List() {
		keylen = max(keylen, len(name))
	}
	keylen += 3 // for output spacing

	for i, name := range catalog.List() {
		id := catalog.ID(i)
		rs := reg.Get(id)
		fmt.Fprintf(w, "%-*s DST: %-3s %+v Rules %s\n", keylen, name, SupportsDST(rs), catalog.Aliases(id), rs.POSIX())
		if rs.AlwaysHistorical {
			fmt.Fprintln(w, "(Offsets follow the historical record only)")
			continue
		}
		description, err := tzposix.HumanReadableTZ(rs.POSIX())
		if err != nil {
			slog.Error("HumanReadableTZ failure", "zone", name, "error", err)
			continue
		}
		fmt.Fprintln(w, description)
		if rs.ValidFrom > 0 {
			fmt.Fprintf(w, "Since %s\n", time.Unix(rs.ValidFrom, 0).UTC().Format(time.RFC3339))
		}
	}
	slog.Info("Statistics", "zoneinfos", catalog.Len(), "aliases", catalog.AliasCount(), "total", catalog.Len()+catalog.AliasCount())
}

// parseInstant accepts unix seconds or an RFC 3339 time.
func parseInstant(s string) (int64, error) {
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, errors.Errorf("%q is neither unix seconds nor RFC 3339", s)
	}
	return t.Unix(), nil
}

// QueryZones prints the offset of each zone at ts.
func QueryZones(w io.Writer, e *tzoffset.Engine, zones []string, ts int64, explain bool) error {
	at := time.Unix(ts, 0).UTC().Format(time.RFC3339)
	for _, name := range zones {
		tz, err := tzoffset.Parse(name)
		if err != nil {
			return err
		}
		off, err := e.OffsetAt(tz, ts)
		if err != nil {
			return errors.WithMessagef(err, "zone %s", tz)
		}
		fmt.Fprintf(w, "%s %s %s (%d)", tz, at, tzoffset.Offset(off), off)
		if explain {
			fmt.Fprintf(w, " via %s path", e.Route(tz, ts))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// PrintMetrics writes the gathered cache metrics as name value lines.
func PrintMetrics(w io.Writer, store *historical.Store) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector(store)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetGauge().GetValue()
			if c := m.GetCounter(); c != nil {
				value = c.GetValue()
			}
			fmt.Fprintf(w, "%s %g\n", mf.GetName(), value)
		}
	}
	return nil
}

func newStore(cfg Config) (*historical.Store, error) {
	loader := historical.EmbeddedLoader()
	if cfg.HistoryFile != "" {
		src, err := historical.OpenFile(cfg.HistoryFile)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", cfg.HistoryFile)
		}
		if src.Len() != catalog.Len() {
			return nil, errors.Wrapf(historical.ErrCorruptEmbeddedData, "%s has %d zones, catalog has %d", cfg.HistoryFile, src.Len(), catalog.Len())
		}
		loader = historical.NewLoader(src)
	}
	return historical.NewStore(loader, historical.WithLogger(slog.Default())), nil
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logging.Fatal("Could not read environment", "error", err)
	}
	if cfg.LogLevel != "" {
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			logging.Fatal("Invalid TZLIST_LOGLEVEL", "error", err)
		}
	}

	var schedulerFilename, jsonFileFormat, at string
	var zones []string
	var explain, showMetrics bool
	pflag.FuncP("loglevel", "l", "Set loglevel to trace, debug, info, warning, error or fatal", logging.SetLevel)
	pflag.StringVarP(&schedulerFilename, "json", "j", "", "write the scheduler JSON export to this file")
	pflag.Lookup("json").NoOptDefVal = cfg.JSONFile
	// Parsed Arguments	Resulting Value
	// --json=hulu		hulu
	// --json		scheduler.json (or $TZLIST_JSON)
	// [nothing]		""
	pflag.StringVar(&jsonFileFormat, "format", "slices", "JSON layout: slices or objects")
	pflag.StringSliceVarP(&zones, "zone", "z", nil, "print the offset of these zones")
	pflag.StringVarP(&at, "at", "t", "", "instant for --zone, unix seconds or RFC 3339 (default now)")
	pflag.BoolVar(&explain, "explain", false, "show whether the compact rules or the historical table answered")
	pflag.BoolVar(&showMetrics, "metrics", false, "print historical cache metrics before exiting")
	pflag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "historical blob file to use instead of the embedded one")
	pflag.Parse()

	store, err := newStore(cfg)
	if err != nil {
		logging.Fatal("Could not open historical data", "error", err)
	}
	engine := tzoffset.NewEngine(tzoffset.WithStore(store))
	if showMetrics {
		defer func() {
			if err := PrintMetrics(os.Stdout, store); err != nil {
				slog.Error("Could not gather metrics", "error", err)
			}
		}()
	}

	switch {
	case len(schedulerFilename) > 0:
		f, err := os.Create(schedulerFilename)
		if err != nil {
			logging.Fatal("Error writing to file", "error", err)
		}
		if err := GenerateJson(f, registry.Default(), jsonFileFormat); err != nil {
			f.Close()
			logging.Fatal("Error generating JSON", "error", err)
		}
		if err := f.Close(); err != nil {
			logging.Fatal("Error writing to file", "error", err)
		}
		fmt.Printf("Successfully wrote JSON data to %s\n", schedulerFilename)
	case len(zones) > 0:
		ts := time.Now().Unix()
		if at != "" {
			if ts, err = parseInstant(at); err != nil {
				logging.Fatal("Invalid --at", "error", err)
			}
		}
		if err := QueryZones(os.Stdout, engine, zones, ts, explain); err != nil {
			logging.Fatal("Query failed", "error", err)
		}
	default:
		ListZones(os.Stdout, registry.Default())
	}
}
