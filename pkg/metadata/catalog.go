package metadata

import (
	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Catalog is the YAML form of a metadata cache:
//
//	namespaces:
//	  use:
//	    description: USE flag
//	    global: [alsa, X]
//	packages:
//	  media-sound/mpd:
//	    use: [lame]
type Catalog struct {
	Namespaces map[string]CatalogNamespace     `yaml:"namespaces"`
	Packages   map[string]map[string][]string `yaml:"packages"`
}

// CatalogNamespace describes one namespace of a Catalog.
type CatalogNamespace struct {
	Description string   `yaml:"description"`
	Global      []string `yaml:"global"`
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.Wrap(err, errors.ErrMetadataLoad, "failed to parse flag catalog")
	}
	return &catalog, nil
}

// Apply merges the catalog into the cache. Namespaces with a description are
// registered; package entries may only add names.
func (cat *Catalog) Apply(c *Cache) {
	for name, ns := range cat.Namespaces {
		if ns.Description != "" {
			c.AddNamespace(name, ns.Description)
		}
		c.AddGlobal(name, ns.Global...)
	}
	for pkg, byNS := range cat.Packages {
		for ns, names := range byNS {
			c.AddLocal(pkg, ns, names...)
		}
	}
}

// LoadCatalog reads the YAML catalog at path into the cache.
func LoadCatalog(fs afero.Fs, path string, c *Cache) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrMetadataLoad, "failed to read flag catalog %s", path).
			WithDetail("path", path)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return err
	}
	catalog.Apply(c)
	c.logger.Debug().
		Str("path", path).
		Int("namespaces", len(catalog.Namespaces)).
		Int("packages", len(catalog.Packages)).
		Msg("Loaded flag catalog")
	return nil
}
