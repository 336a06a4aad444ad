package flagstore

import (
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/types"
)

// Entry is one package line of a flag file.
type Entry struct {
	pkg      string
	flags    []*types.Flag
	comment  string
	raw      string
	modified bool
	file     *File
}

var _ types.FlagEntry = (*Entry)(nil)

// Package implements types.FlagEntry.
func (e *Entry) Package() string {
	return e.pkg
}

// Flags returns the entry's flags in order.
func (e *Entry) Flags() []*types.Flag {
	return e.flags
}

// Lookup implements types.FlagEntry.
func (e *Entry) Lookup(id types.Identifier) []*types.Flag {
	var matched []*types.Flag
	for _, f := range e.flags {
		if id.Matches(f.Name) {
			matched = append(matched, f)
		}
	}
	return matched
}

// Delete implements types.FlagEntry.
func (e *Entry) Delete(id types.Identifier) int {
	kept := e.flags[:0]
	removed := 0
	for _, f := range e.flags {
		if id.Matches(f.Name) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	e.flags = kept
	if removed > 0 {
		e.modified = true
	}
	return removed
}

// Append implements types.FlagEntry.
func (e *Entry) Append(name string) *types.Flag {
	f := &types.Flag{Name: name, Modifier: types.ModifierOn}
	e.flags = append(e.flags, f)
	e.modified = true
	return f
}

// Len implements types.FlagEntry.
func (e *Entry) Len() int {
	return len(e.flags)
}

// MarkModified implements types.FlagEntry.
func (e *Entry) MarkModified() {
	e.modified = true
}

// Modified implements types.FlagEntry.
func (e *Entry) Modified() bool {
	return e.modified
}

// String renders the entry as a flag file line. Unmodified entries keep
// their original text.
func (e *Entry) String() string {
	if !e.modified && e.raw != "" {
		return e.raw
	}
	parts := make([]string, 0, len(e.flags)+2)
	parts = append(parts, e.pkg)
	for _, f := range e.flags {
		parts = append(parts, f.String())
	}
	if e.comment != "" {
		parts = append(parts, e.comment)
	}
	return strings.Join(parts, " ")
}

// parseEntry parses a non-blank, non-comment line.
func parseEntry(raw string) *Entry {
	content, comment := raw, ""
	if idx := strings.Index(raw, "#"); idx >= 0 {
		content, comment = raw[:idx], strings.TrimSpace(raw[idx:])
	}
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return nil
	}

	e := &Entry{pkg: fields[0], comment: comment, raw: raw}
	for _, tok := range fields[1:] {
		if name, ok := strings.CutPrefix(tok, types.ModifierOff); ok {
			e.flags = append(e.flags, &types.Flag{Name: name, Modifier: types.ModifierOff})
		} else {
			e.flags = append(e.flags, &types.Flag{Name: tok, Modifier: types.ModifierOn})
		}
	}
	return e
}
