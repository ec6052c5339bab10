package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/internal/logging"
	"github.com/tzlist/tzoffset/rfc9636"
)

const (
	utcName    = "UTC"
	etcUTCName = "Etc/UTC"
)

// source lists the zones and links of a tzdata release.
type source struct {
	version string
	zones   []string
	links   []link
}

type link struct {
	target, alias string
}

// names is the catalog derived from a source.
type names struct {
	canonical []string
	aliases   map[string]string // alias -> canonical
}

// readZI reads the Z (zone) and L (link) lines of a tzdata.zi file.
func readZI(r io.Reader) (source, error) {
	var src source
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if v, ok := strings.CutPrefix(line, "# version "); ok {
			src.version = strings.TrimSpace(v)
			continue
		}
		f := strings.Fields(line)
		switch {
		case len(f) >= 2 && f[0] == "Z":
			src.zones = append(src.zones, f[1])
		case len(f) >= 3 && f[0] == "L":
			src.links = append(src.links, link{target: f[1], alias: f[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return src, err
	}
	if len(src.zones) == 0 {
		return src, errors.New("no zone lines in tzdata.zi")
	}
	return src, nil
}

func readZIFile(path string) (source, error) {
	f, err := os.Open(path)
	if err != nil {
		return source{}, err
	}
	defer f.Close()
	src, err := readZI(f)
	return src, errors.WithMessage(err, path)
}

// canonicalName publishes Etc/UTC as UTC.
func canonicalName(zone string) string {
	if zone == etcUTCName {
		return utcName
	}
	return zone
}

// zoneFile maps a canonical name back to its zoneinfo file.
func zoneFile(name string) string {
	if name == utcName {
		return etcUTCName
	}
	return name
}

func buildNames(src source, exclude []string) names {
	n := names{aliases: make(map[string]string)}
	for _, z := range src.zones {
		if slices.Contains(exclude, z) {
			continue
		}
		n.canonical = append(n.canonical, canonicalName(z))
	}
	slices.Sort(n.canonical)
	n.canonical = slices.Compact(n.canonical)

	isCanonical := func(name string) bool {
		_, found := slices.BinarySearch(n.canonical, name)
		return found
	}
	for _, l := range src.links {
		target := canonicalName(l.target)
		if isCanonical(l.alias) || !isCanonical(target) {
			continue
		}
		n.aliases[l.alias] = target
	}
	if isCanonical(utcName) {
		n.aliases[etcUTCName] = utcName
	}
	return n
}

// walkTzDir lists a zoneinfo directory when no tzdata.zi is available.
// Regular TZif files are zones and symlinks to them are links.
func walkTzDir(root string) (source, error) {
	var src source
	if v, err := os.ReadFile(filepath.Join(root, "+VERSION")); err == nil {
		src.version = strings.TrimSpace(string(v))
	}
	if err := walkDir(root, "", &src); err != nil {
		return src, err
	}
	if len(src.zones) == 0 {
		return src, errors.Errorf("no zoneinfo files under %s", root)
	}
	return src, nil
}

func walkDir(root, rel string, src *source) error {
	dirInfos, err := os.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}

	// Linux Convention
	//   The zoneinfo names are capitalized. Lower case entries such as posix/,
	//   right/, localtime and posixrules are not zones.
	for _, info := range dirInfos {
		if info.Name() != strings.ToUpper(info.Name()[:1])+info.Name()[1:] {
			logging.Trace("Skipping because name is not capitalized", "filename", info.Name())
			continue
		}
		name := filepath.ToSlash(filepath.Join(rel, info.Name()))
		if info.IsDir() {
			if err := walkDir(root, name, src); err != nil {
				return err
			}
			continue
		}
		if _, err := rfc9636.LoadLocation(name, []string{root}); err != nil {
			logging.Trace("File is not a timezone file", "file", name)
			continue
		}
		if info.Type()&os.ModeSymlink == 0 {
			src.zones = append(src.zones, name)
			continue
		}
		resolved, err := filepath.EvalSymlinks(filepath.Join(root, name))
		if err != nil {
			return errors.Wrapf(err, "evaluate symlink %s", name)
		}
		absRoot, err := filepath.EvalSymlinks(root)
		if err != nil {
			return err
		}
		target, err := filepath.Rel(absRoot, resolved)
		if err != nil || strings.HasPrefix(target, "..") {
			return errors.Errorf("symlink %s points outside %s", name, root)
		}
		src.links = append(src.links, link{target: filepath.ToSlash(target), alias: name})
	}
	return nil
}

// loadSource prefers tzdata.zi and falls back to walking the directory.
func loadSource(cfg Config) (source, error) {
	zi := cfg.TzdataZi
	if zi == "" {
		candidate := filepath.Join(cfg.ZoneinfoDir, "tzdata.zi")
		if _, err := os.Stat(candidate); err == nil {
			zi = candidate
		}
	}
	if zi != "" {
		return readZIFile(zi)
	}
	return walkTzDir(cfg.ZoneinfoDir)
}
