package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/KimNorgaard/go-jsonml"
)

const defaultIndent = 2

// Config holds the settings read from a TOML configuration file.
//
//	indent = 2
//	max_depth = 500
//	verbose = false
type Config struct {
	Indent   int  `toml:"indent"`    // spaces per level for fmt; 0 is compact
	MaxDepth int  `toml:"max_depth"` // decoder nesting bound; 0 keeps the default
	Verbose  bool `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{Indent: defaultIndent}
}

// loadConfig reads a TOML configuration file. Keys it does not know are
// rejected so that typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Indent < 0 {
		return Config{}, fmt.Errorf("load config %s: indent must not be negative", path)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("load config %s: max_depth must not be negative", path)
	}
	return cfg, nil
}

// decodeOptions translates the configuration into decoder options.
func (cfg Config) decodeOptions() []jsonml.DecodeOption {
	if cfg.MaxDepth > 0 {
		return []jsonml.DecodeOption{jsonml.MaxDepth(cfg.MaxDepth)}
	}
	return nil
}
