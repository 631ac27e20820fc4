package icons

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	wserrors "github.com/mj1618/wsicons/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointer fields distinguish "unset"
// from "set to empty".
type fileConfig struct {
	Icons   map[string]string `toml:"icons"        yaml:"icons"`
	Aliases map[string]string `toml:"aliases"      yaml:"aliases"`
	Rules   []Rule            `toml:"rules"        yaml:"rules"`
	Default *string           `toml:"default_icon" yaml:"default_icon"`
	// NoDefaults drops the built-in icon table.
	NoDefaults bool `toml:"no_defaults" yaml:"no_defaults"`
}

// configNames are tried in order by DefaultPath.
var configNames = []string{"config.toml", "config.yaml", "config.yml"}

// Dir returns the wsicons configuration directory.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wsicons")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "wsicons")
	}
	return filepath.Join(home, ".config", "wsicons")
}

// DefaultPath returns the first existing config file in Dir, or the
// TOML path when none exists yet.
func DefaultPath() string {
	dir := Dir()
	for _, name := range configNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, configNames[0])
}

// Load reads the icon config at path and merges it over the defaults.
// A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, wserrors.NewConfig(path, err)
	}

	fc, err := decode(path, data)
	if err != nil {
		return nil, wserrors.NewConfig(path, err)
	}
	if fc.NoDefaults {
		cfg = &Config{}
	}
	if err := cfg.merge(fc); err != nil {
		return nil, wserrors.NewConfig(path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte) (*fileConfig, error) {
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&fc); err != nil {
			return nil, fmt.Errorf("toml decode: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
	return &fc, nil
}

func (c *Config) merge(fc *fileConfig) error {
	if c.Icons == nil {
		c.Icons = make(map[string]string)
	}
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	for k, v := range fc.Icons {
		c.Icons[strings.ToLower(k)] = v
	}
	for k, v := range fc.Aliases {
		c.Aliases[strings.ToLower(k)] = strings.ToLower(v)
	}
	for i := range fc.Rules {
		r := fc.Rules[i]
		if err := r.compile(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		c.Rules = append(c.Rules, r)
	}
	if fc.Default != nil {
		c.Default = *fc.Default
	}
	return nil
}
