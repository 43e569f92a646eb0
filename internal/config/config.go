// Package config loads linkstorm configuration from TOML files and
// environment variables.
//
// Configuration controls which formatter serves which document type and
// which Lua plugins load at startup:
//
//	default_doctype = "text"
//	plugins = ["~/.config/linkstorm/wiki.lua"]
//
//	[formatters]
//	org = "off"         # disable a built-in
//	rst = "text"        # serve rst documents with the text built-in
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/linkstorm/internal/link/format"
)

// FormatterOff disables the formatter for a document type.
const FormatterOff = "off"

// Config is the linkstorm configuration.
type Config struct {
	// DefaultDocType is used when the host supplies no document type.
	DefaultDocType string `toml:"default_doctype"`

	// Plugins lists Lua plugin files to load at startup.
	Plugins []string `toml:"plugins"`

	// Formatters maps document types to built-in formatter names, or to
	// "off" to disable a mapping.
	Formatters map[string]string `toml:"formatters"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DefaultDocType: format.DocTypeText,
	}
}

// Load reads configuration from path, overlaying environment variables.
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	return LoadWithFS(DefaultFS(), path)
}

// LoadWithFS reads configuration using the given file system.
func LoadWithFS(fs FileSystem, path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := fs.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays LINKSTORM_-prefixed environment variables.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("LINKSTORM_DEFAULT_DOCTYPE"); ok {
		c.DefaultDocType = v
	}
	if v, ok := os.LookupEnv("LINKSTORM_PLUGIN_PATH"); ok {
		c.Plugins = append(c.Plugins, v)
	}
}

// Apply reshapes a formatter registry according to the configuration.
// Unknown built-in names are reported; "off" removes the mapping.
func (c Config) Apply(registry *format.Registry) error {
	for docType, name := range c.Formatters {
		if name == FormatterOff {
			registry.Unregister(docType)
			continue
		}

		builtin, ok := format.Builtin(name)
		if !ok {
			return fmt.Errorf("formatter %q for document type %q: %w", name, docType, ErrUnknownFormatter)
		}
		registry.RegisterFunc(docType, builtin.Format)
	}
	return nil
}
