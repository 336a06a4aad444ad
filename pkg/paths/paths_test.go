package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgflag/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGLocations(t *testing.T) {
	configHome := t.TempDir()
	stateHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)

	assert.Equal(t, filepath.Join(configHome, "pkgflag", "config.toml"), paths.ConfigFile())
	assert.Equal(t, filepath.Join(stateHome, "pkgflag", "pkgflag.log"), paths.LogFile())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/portage", filepath.Join(home, "portage")},
		{"~portage/x", "~portage/x"},
		{"/etc/portage", "/etc/portage"},
		{"rel/~", "rel/~"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Setenv("PKGFLAG_TEST_ROOT", "/srv/root")

	got, err := paths.Normalize("$PKGFLAG_TEST_ROOT/etc//portage/")
	require.NoError(t, err)
	assert.Equal(t, "/srv/root/etc/portage", got)

	got, err = paths.Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = paths.Normalize("repo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "repo"), got)
}
