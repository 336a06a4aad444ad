package flagstore

import (
	"github.com/arthur-debert/pkgflag/pkg/types"
)

// Namespace is the set of flag files of one namespace.
type Namespace struct {
	name string
	// defaultPath receives new entries when the namespace has no file yet
	defaultPath string
	files       []*File
}

var _ types.FlagNamespace = (*Namespace)(nil)

// Name implements types.FlagNamespace.
func (n *Namespace) Name() string {
	return n.name
}

// Files returns the namespace's files in load order.
func (n *Namespace) Files() []*File {
	return n.files
}

// Entries implements types.FlagNamespace.
func (n *Namespace) Entries(pkg string) []types.FlagEntry {
	var entries []types.FlagEntry
	for _, f := range n.files {
		for _, e := range f.Entries() {
			if e.pkg == pkg {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// Append implements types.FlagNamespace. The entry goes to the end of the
// last file.
func (n *Namespace) Append(pkg string) types.FlagEntry {
	if len(n.files) == 0 {
		n.files = append(n.files, &File{Path: n.defaultPath})
	}
	return n.files[len(n.files)-1].appendEntry(pkg)
}

// Remove implements types.FlagNamespace.
func (n *Namespace) Remove(entry types.FlagEntry) {
	e, ok := entry.(*Entry)
	if !ok || e.file == nil {
		return
	}
	e.file.removeEntry(e)
}
