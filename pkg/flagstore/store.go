package flagstore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/filesystem"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store is an in-memory types.FlagStore.
type Store struct {
	namespaces map[string]*Namespace
	logger     zerolog.Logger
}

var _ types.FlagStore = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{
		namespaces: make(map[string]*Namespace),
		logger:     logging.GetLogger("flagstore"),
	}
}

// AddNamespace registers a namespace whose new entries go to path.
func (s *Store) AddNamespace(name, path string) *Namespace {
	ns := &Namespace{name: name, defaultPath: path}
	s.namespaces[name] = ns
	return ns
}

// Namespace implements types.FlagStore.
func (s *Store) Namespace(name string) (types.FlagNamespace, bool) {
	ns, ok := s.namespaces[name]
	if !ok {
		return nil, false
	}
	return ns, true
}

// Namespaces returns the registered namespace names, sorted.
func (s *Store) Namespaces() []string {
	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EntryCount returns the number of package records held for a namespace.
func (s *Store) EntryCount(name string) int {
	ns, ok := s.namespaces[name]
	if !ok {
		return 0
	}
	count := 0
	for _, f := range ns.files {
		count += len(f.Entries())
	}
	return count
}

// Load reads the flag files of every namespace. files maps a namespace to
// its path relative to root; the path may be a file, a directory of files,
// or missing.
func Load(fs afero.Fs, root string, files map[string]string) (*Store, error) {
	s := New()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(root, files[name])
		ns := s.AddNamespace(name, path)
		if err := s.loadNamespace(fs, ns, path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) loadNamespace(fs afero.Fs, ns *Namespace, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("namespace", ns.name).Str("path", path).Msg("No flag file yet")
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).WithDetail("path", path)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = listFlagFiles(fs, path)
		if err != nil {
			return err
		}
		// new entries of an empty directory go to a file inside it
		ns.defaultPath = filepath.Join(path, ns.name)
	}

	for _, p := range paths {
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", p).WithDetail("path", p)
		}
		f, err := ParseFile(p, data)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to parse %s", p).WithDetail("path", p)
		}
		ns.files = append(ns.files, f)
		s.logger.Debug().
			Str("namespace", ns.name).
			Str("path", p).
			Int("entries", len(f.Entries())).
			Msg("Loaded flag file")
	}
	return nil
}

// listFlagFiles returns the regular files of dir in name order, skipping
// hidden files and editor backups.
func listFlagFiles(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir).WithDetail("path", dir)
	}
	var paths []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// DirtyFiles returns the files that Save would write.
func (s *Store) DirtyFiles() []*File {
	var dirty []*File
	for _, name := range s.Namespaces() {
		for _, f := range s.namespaces[name].files {
			if f.Dirty() {
				dirty = append(dirty, f)
			}
		}
	}
	return dirty
}

// Save writes every dirty file and returns their paths.
func (s *Store) Save(fs afero.Fs) ([]string, error) {
	var written []string
	for _, f := range s.DirtyFiles() {
		if err := filesystem.WriteFileAtomic(fs, f.Path, f.Bytes()); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.Path).
				WithDetail("path", f.Path)
		}
		s.logger.Info().Str("path", f.Path).Msg("Wrote flag file")
		written = append(written, f.Path)
	}
	return written, nil
}
