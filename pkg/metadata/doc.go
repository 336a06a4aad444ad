// Package metadata provides the flag metadata cache used to tell which
// namespace a bare flag name belongs to.
//
// A Cache holds, per namespace, a description, the set of globally known
// names and the names that are only valid for specific packages. It can be
// filled programmatically, from a YAML catalog (LoadCatalog) or from a
// Portage-style repository tree (LoadRepository), which reads:
//
//	profiles/use.desc       global USE flags
//	profiles/arch.list      keywords (both "arch" and "~arch")
//	licenses/*              licence names
//	<cat>/<pkg>/metadata.xml  package-local USE flags
package metadata
