// Package types defines the core types and interfaces shared by pkgflag's
// packages: flags and flag identifiers, the flag record store seen by actions,
// and the metadata cache used to resolve namespaces.
package types
