package main

import (
	"os"
	"slices"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config drives one generator run. Output paths are relative to the
// working directory, which is the module root under go generate.
type Config struct {
	ZoneinfoDir string `yaml:"zoneinfo_dir"`
	// TzdataZi names the tzdata.zi file listing zones and links. When empty,
	// zoneinfo_dir/tzdata.zi is used if present; otherwise the directory is
	// walked and symlinks become aliases.
	TzdataZi         string   `yaml:"tzdata_zi"`
	AlwaysHistorical []string `yaml:"always_historical"`
	Exclude          []string `yaml:"exclude"`
	// Floor is the first instant of every historical table.
	Floor            int64  `yaml:"floor"`
	CompressionLevel string `yaml:"compression_level"`
	Output           Output `yaml:"output"`
}

type Output struct {
	Catalog  string `yaml:"catalog"`
	Registry string `yaml:"registry"`
	History  string `yaml:"history"`
}

func defaultConfig() Config {
	return Config{
		ZoneinfoDir:      "/usr/share/zoneinfo",
		AlwaysHistorical: []string{"Africa/Casablanca", "Africa/El_Aaiun"},
		Exclude:          []string{"Factory"},
		CompressionLevel: "best",
		Output: Output{
			Catalog:  "catalog/names_gen.go",
			Registry: "registry/rules_gen.go",
			History:  "historical/data/history.bin",
		},
	}
}

// loadConfig overlays the YAML file at path onto the defaults. An empty
// path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.ZoneinfoDir == "" {
		return errors.New("zoneinfo_dir is required")
	}
	if _, err := c.encoderLevel(); err != nil {
		return err
	}
	if c.Output.Catalog == "" || c.Output.Registry == "" || c.Output.History == "" {
		return errors.New("every output path is required")
	}
	return nil
}

func (c Config) encoderLevel() (zstd.EncoderLevel, error) {
	ok, level := zstd.EncoderLevelFromString(c.CompressionLevel)
	if !ok {
		return 0, errors.Errorf("unknown compression_level %q", c.CompressionLevel)
	}
	return level, nil
}

func (c Config) isAlwaysHistorical(name string) bool {
	return slices.Contains(c.AlwaysHistorical, name)
}
