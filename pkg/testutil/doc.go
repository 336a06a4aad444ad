// Package testutil provides fixtures shared by pkgflag's tests.
//
// Key components:
//   - FileTree / NewMemFS: declarative in-memory file trees on afero
//   - PortageRepo: a small ebuild repository with global, local and
//     keyword metadata
//   - MockCache: a testify mock of types.MetadataCache
//   - Isolate: points the XDG directories at temporary ones
//
// All test data is defined inline; tests never touch the real /etc/portage.
package testutil
