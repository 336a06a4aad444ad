package flagstore

import (
	"bufio"
	"bytes"
	"strings"
)

// line is either an entry or verbatim text (comments, blank lines).
type line struct {
	text  string
	entry *Entry
}

// File is one flag file: its lines in order.
type File struct {
	Path  string
	lines []*line
	// changed records added or removed entries
	changed bool
}

// ParseFile reads flag file content. Lines may be as long as the file
// itself.
func ParseFile(path string, data []byte) (*File, error) {
	f := &File{Path: path}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	for scanner.Scan() {
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			f.lines = append(f.lines, &line{text: text})
			continue
		}
		e := parseEntry(text)
		if e == nil {
			f.lines = append(f.lines, &line{text: text})
			continue
		}
		e.file = f
		f.lines = append(f.lines, &line{entry: e})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// Entries returns the file's entries in order.
func (f *File) Entries() []*Entry {
	var entries []*Entry
	for _, l := range f.lines {
		if l.entry != nil {
			entries = append(entries, l.entry)
		}
	}
	return entries
}

// Dirty reports whether the file differs from what was loaded.
func (f *File) Dirty() bool {
	if f.changed {
		return true
	}
	for _, l := range f.lines {
		if l.entry != nil && l.entry.modified {
			return true
		}
	}
	return false
}

// Bytes renders the file content.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	for _, l := range f.lines {
		if l.entry != nil {
			buf.WriteString(l.entry.String())
		} else {
			buf.WriteString(l.text)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (f *File) appendEntry(pkg string) *Entry {
	e := &Entry{pkg: pkg, file: f, modified: true}
	f.lines = append(f.lines, &line{entry: e})
	f.changed = true
	return e
}

func (f *File) removeEntry(e *Entry) bool {
	for i, l := range f.lines {
		if l.entry == e {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			f.changed = true
			return true
		}
	}
	return false
}
