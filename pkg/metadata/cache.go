package metadata

import (
	"sort"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
)

// Well-known namespaces filled by LoadRepository.
const (
	NamespaceUse      = "use"
	NamespaceKeywords = "kw"
	NamespaceLicense  = "lic"
)

// Suggest limits: at most maxSuggestions names, each either a fuzzy
// subsequence match or within maxSuggestDistance edits.
const (
	maxSuggestions     = 3
	maxSuggestDistance = 2
)

type nameSet map[string]struct{}

func (s nameSet) add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// Cache is an in-memory types.MetadataCache.
type Cache struct {
	descriptions map[string]string
	global       map[string]nameSet
	// local maps package -> namespace -> names valid only for that package
	local  map[string]map[string]nameSet
	logger zerolog.Logger
}

var _ types.MetadataCache = (*Cache)(nil)
var _ types.Suggester = (*Cache)(nil)

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		descriptions: make(map[string]string),
		global:       make(map[string]nameSet),
		local:        make(map[string]map[string]nameSet),
		logger:       logging.GetLogger("metadata.cache"),
	}
}

// AddNamespace registers a namespace. Describe only knows registered
// namespaces.
func (c *Cache) AddNamespace(name, description string) {
	c.descriptions[name] = description
	if _, ok := c.global[name]; !ok {
		c.global[name] = make(nameSet)
	}
}

// AddGlobal records names valid for every package.
func (c *Cache) AddGlobal(namespace string, names ...string) {
	set, ok := c.global[namespace]
	if !ok {
		set = make(nameSet)
		c.global[namespace] = set
	}
	set.add(names...)
}

// AddLocal records names valid only for pkg.
func (c *Cache) AddLocal(pkg, namespace string, names ...string) {
	byNS, ok := c.local[pkg]
	if !ok {
		byNS = make(map[string]nameSet)
		c.local[pkg] = byNS
	}
	set, ok := byNS[namespace]
	if !ok {
		set = make(nameSet)
		byNS[namespace] = set
	}
	set.add(names...)
}

// Namespaces returns the registered namespaces, sorted.
func (c *Cache) Namespaces() []string {
	names := make([]string, 0, len(c.descriptions))
	for name := range c.descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Retain unregisters every namespace not in names. Names recorded for a
// dropped namespace stay in the cache but no lookup reaches them.
func (c *Cache) Retain(names ...string) {
	keep := make(nameSet)
	keep.add(names...)
	for ns := range c.descriptions {
		if !keep.has(ns) {
			delete(c.descriptions, ns)
			c.logger.Debug().Str("namespace", ns).Msg("Dropping unconfigured namespace")
		}
	}
}

// Describe implements types.MetadataCache.
func (c *Cache) Describe(namespace string) (string, error) {
	desc, ok := c.descriptions[namespace]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidNamespace, "unknown namespace %q", namespace).
			WithDetail("namespace", namespace)
	}
	return desc, nil
}

// WhatIs implements types.MetadataCache. A name is valid for a package when
// it is global or local to that package.
func (c *Cache) WhatIs(identifier, pkg, restrict string) []string {
	var result []string
	for _, ns := range c.candidateNamespaces(restrict) {
		if c.global[ns].has(identifier) || c.local[pkg][ns].has(identifier) {
			result = append(result, ns)
		}
	}
	c.logger.Trace().
		Str("identifier", identifier).
		Str("package", pkg).
		Str("restrict", restrict).
		Strs("namespaces", result).
		Msg("whatis")
	return result
}

// GlobWhatIs implements types.MetadataCache. A name is known globally when it
// is global or local to any package.
func (c *Cache) GlobWhatIs(identifier, restrict string) []string {
	var result []string
	for _, ns := range c.candidateNamespaces(restrict) {
		if c.global[ns].has(identifier) || c.anyLocal(ns, identifier) {
			result = append(result, ns)
		}
	}
	c.logger.Trace().
		Str("identifier", identifier).
		Str("restrict", restrict).
		Strs("namespaces", result).
		Msg("glob whatis")
	return result
}

// Suggest implements types.Suggester, ranking known names by edit distance.
func (c *Cache) Suggest(identifier, namespace string) []string {
	known := make(nameSet)
	for _, ns := range c.candidateNamespaces(namespace) {
		for name := range c.global[ns] {
			known.add(name)
		}
		for _, byNS := range c.local {
			for name := range byNS[ns] {
				known.add(name)
			}
		}
	}

	type candidate struct {
		name     string
		distance int
	}
	var candidates []candidate
	for name := range known {
		d := fuzzy.LevenshteinDistance(identifier, name)
		if d <= maxSuggestDistance || fuzzy.MatchNormalizedFold(identifier, name) {
			candidates = append(candidates, candidate{name: name, distance: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	var result []string
	for _, cand := range candidates {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, cand.name)
	}
	return result
}

func (c *Cache) anyLocal(namespace, identifier string) bool {
	for _, byNS := range c.local {
		if byNS[namespace].has(identifier) {
			return true
		}
	}
	return false
}

// candidateNamespaces returns the registered namespaces, or just restrict
// when it is set.
func (c *Cache) candidateNamespaces(restrict string) []string {
	if restrict != "" {
		return []string{restrict}
	}
	return c.Namespaces()
}
