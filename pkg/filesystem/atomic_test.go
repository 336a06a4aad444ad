package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgflag/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_New(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, filesystem.WriteFileAtomic(fs, "/etc/portage/package.use/zz-local", []byte("app-misc/foo bar\n")))

	data, err := afero.ReadFile(fs, "/etc/portage/package.use/zz-local")
	require.NoError(t, err)
	assert.Equal(t, "app-misc/foo bar\n", string(data))

	entries, err := afero.ReadDir(fs, "/etc/portage/package.use")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not remain")
}

func TestWriteFileAtomic_KeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.use")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))

	fs := filesystem.NewOS()
	require.NoError(t, filesystem.WriteFileAtomic(fs, path, []byte("new\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFileAtomic_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/etc/portage/package.use", 0755))

	err := filesystem.WriteFileAtomic(fs, "/etc/portage/package.use", []byte("x"))
	assert.Error(t, err)
}
