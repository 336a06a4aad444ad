// Package resolver turns the body of a command-line token into a namespace
// and a flag identifier.
//
// Bodies take the forms "name", "ns::name", "*::name" and may contain glob
// metacharacters. Literal names are looked up in a types.MetadataCache, per
// target package when packages are known and globally otherwise. Names that
// cannot be found produce warnings, not errors; ambiguous names and unknown
// namespace prefixes produce a failed Resolution.
package resolver
