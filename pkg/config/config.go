package config

import (
	"sort"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/resolver"
	"github.com/pelletier/go-toml/v2"
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Paths locates the flag files and the flag metadata.
type Paths struct {
	ConfigRoot string `koanf:"config_root" toml:"config_root"`
	Repository string `koanf:"repository" toml:"repository"`
	Catalog    string `koanf:"catalog" toml:"catalog"`
}

// Namespace configures one flag namespace.
type Namespace struct {
	// File is relative to Paths.ConfigRoot; it may name a directory.
	File        string `koanf:"file" toml:"file"`
	Description string `koanf:"description" toml:"description"`
}

// Output holds terminal output settings
type Output struct {
	Color string `koanf:"color" toml:"color"`
}

// Config is the main configuration structure
type Config struct {
	Paths      Paths                `koanf:"paths" toml:"paths"`
	Output     Output               `koanf:"output" toml:"output"`
	Namespaces map[string]Namespace `koanf:"namespaces" toml:"namespaces"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := load(nil)
	if err != nil {
		// the embedded file is part of the binary
		panic(err)
	}
	return cfg
}

// NamespaceNames returns the configured namespaces, sorted.
func (c *Config) NamespaceNames() []string {
	names := make([]string, 0, len(c.Namespaces))
	for name := range c.Namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamespaceFiles maps every namespace to its flag file.
func (c *Config) NamespaceFiles() map[string]string {
	files := make(map[string]string, len(c.Namespaces))
	for name, ns := range c.Namespaces {
		files[name] = ns.File
	}
	return files
}

// Validate checks the configuration for values pkgflag cannot work with.
func (c *Config) Validate() error {
	if c.Paths.ConfigRoot == "" {
		return errors.New(errors.ErrConfigValid, "paths.config_root must not be empty")
	}
	if len(c.Namespaces) == 0 {
		return errors.New(errors.ErrConfigValid, "no namespaces configured")
	}
	for _, name := range c.NamespaceNames() {
		if c.Namespaces[name].File == "" {
			return errors.Newf(errors.ErrConfigValid, "namespace %s has no file", name).
				WithDetail("namespace", name)
		}
	}
	if _, ok := c.Namespaces[resolver.DefaultNamespace]; !ok {
		return errors.Newf(errors.ErrConfigValid, "the %s namespace is required", resolver.DefaultNamespace)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "invalid output.color %q", c.Output.Color).
			WithDetail("color", c.Output.Color)
	}
	return nil
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
