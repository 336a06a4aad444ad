package types

// FlagEntry is one per-package record in a flag namespace, e.g. a single
// "app-misc/foo bar -baz" line of package.use.
type FlagEntry interface {
	Package() string
	// Lookup returns the flags matching id, in file order.
	Lookup(id Identifier) []*Flag
	// Delete removes every flag matching id and returns how many were removed.
	Delete(id Identifier) int
	// Append adds a new flag (modifier "on") and marks the entry modified.
	Append(name string) *Flag
	Len() int
	MarkModified()
	Modified() bool
}

// FlagNamespace is the package-keyed view over all records of one namespace.
type FlagNamespace interface {
	Name() string
	// Entries returns the package's records in file order.
	Entries(pkg string) []FlagEntry
	// Append creates a new, empty record for pkg after all existing ones.
	Append(pkg string) FlagEntry
	Remove(entry FlagEntry)
}

// FlagStore gives access to the flag records of every known namespace.
type FlagStore interface {
	Namespace(name string) (FlagNamespace, bool)
}

// MetadataCache answers what kind of flag a name is.
type MetadataCache interface {
	// Describe returns a human readable description of namespace, or an
	// error when the namespace is unknown.
	Describe(namespace string) (string, error)
	// WhatIs returns the namespaces in which identifier is valid for pkg.
	// A non-empty restrict limits the answer to that namespace.
	WhatIs(identifier, pkg, restrict string) []string
	// GlobWhatIs is WhatIs across all packages.
	GlobWhatIs(identifier, restrict string) []string
}

// Suggester is implemented by caches that can propose names close to an
// unknown identifier.
type Suggester interface {
	Suggest(identifier, namespace string) []string
}
