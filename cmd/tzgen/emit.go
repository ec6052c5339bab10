package main

import (
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/registry"
	"github.com/tzlist/tzoffset/rules"
)

var namesTemplate = template.Must(template.New("names").Parse(`// Code generated by tzgen from tzdata {{.Version}}; DO NOT EDIT.

package catalog

// UTC is the zone with a permanent zero offset.
const UTC ID = {{.UTC}}

var canonicalNames = [...]string{
{{- range .Canonical}}
	{{printf "%q" .}},
{{- end}}
}

var aliasNames = [...]alias{
{{- range .Aliases}}
	{ {{- printf "%q" .Alias}}, {{printf "%q" .Target -}} },
{{- end}}
}
`))

var rulesTemplate = template.Must(template.New("rules").Parse(`// Code generated by tzgen from tzdata {{.Version}}; DO NOT EDIT.

package registry

import "github.com/tzlist/tzoffset/rules"

var ruleSets = [...]RuleSet{
{{- range .Entries}}
	// {{.Name}}
	{{.Expr}},
{{- end}}
}
`))

type aliasEntry struct {
	Alias, Target string
}

type ruleEntry struct {
	Name, Expr string
}

func renderNames(version string, n names) ([]byte, error) {
	utc, found := slices.BinarySearch(n.canonical, utcName)
	if !found {
		return nil, errors.New("catalog has no UTC zone")
	}
	aliases := make([]aliasEntry, 0, len(n.aliases))
	for a, t := range n.aliases {
		aliases = append(aliases, aliasEntry{Alias: a, Target: t})
	}
	slices.SortFunc(aliases, func(a, b aliasEntry) int { return cmp.Compare(a.Alias, b.Alias) })
	return render(namesTemplate, map[string]any{
		"Version":   version,
		"UTC":       utc,
		"Canonical": n.canonical,
		"Aliases":   aliases,
	})
}

func renderRules(version string, zones []zoneData) ([]byte, error) {
	entries := make([]ruleEntry, len(zones))
	for i, z := range zones {
		entries[i] = ruleEntry{Name: z.name, Expr: ruleSetExpr(z.rules)}
	}
	return render(rulesTemplate, map[string]any{
		"Version": version,
		"Entries": entries,
	})
}

func render(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	return src, errors.Wrapf(err, "format %s", t.Name())
}

var weekIdents = [...]string{rules.First: "rules.First", rules.Second: "rules.Second",
	rules.Third: "rules.Third", rules.Fourth: "rules.Fourth", rules.Last: "rules.Last"}

// ruleSetExpr renders rs as a call of the registry constructors.
func ruleSetExpr(rs registry.RuleSet) string {
	switch {
	case rs.AlwaysHistorical:
		return fmt.Sprintf("historicalOnly(%d)", rs.StdOffset)
	case rs.DST == nil && rs.ValidFrom == registry.AlwaysValid:
		return fmt.Sprintf("constant(%d)", rs.StdOffset)
	case rs.DST == nil:
		return fmt.Sprintf("fixed(%d, %d)", rs.StdOffset, rs.ValidFrom)
	}
	tr := func(fn string, r rules.TransitionRule) string {
		return fmt.Sprintf("%s(%d, %s, %d, %d)", fn, r.Month, weekIdents[r.Week], r.Weekday, r.Minutes)
	}
	return fmt.Sprintf("seasonal(%d, %d, dst(%d, %s, %s))", rs.StdOffset, rs.ValidFrom,
		rs.DST.DeltaMinutes, tr("startsOn", rs.DST.Start), tr("endsOn", rs.DST.End))
}

// buildHistory compresses each zone's table and lays out the blob. It also
// returns the total uncompressed size.
func buildHistory(zones []zoneData, level zstd.EncoderLevel) ([]byte, int, error) {
	frames := make([][]byte, len(zones))
	raw := 0
	for i, z := range zones {
		frame, err := historical.Compress(z.table, level)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "zone %s", z.name)
		}
		frames[i] = frame
		raw += len(historical.EncodeRecords(z.table))
	}
	blob, err := historical.BuildBlob(frames)
	return blob, raw, err
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
