package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	defaultFileMode os.FileMode = 0644
	defaultDirMode  os.FileMode = 0755
)

// NewOS returns the filesystem used outside of tests.
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// WriteFileAtomic replaces path with data. The content is written to a
// temporary file in the same directory which is then renamed over path. An
// existing file keeps its permissions; new files get 0644.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, defaultDirMode); err != nil {
		return err
	}

	mode := defaultFileMode
	if info, err := fs.Stat(path); err == nil {
		if info.IsDir() {
			return &os.PathError{Op: "write", Path: path, Err: os.ErrExist}
		}
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	if err := fs.Chmod(tmpName, mode); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return err
	}
	return nil
}
