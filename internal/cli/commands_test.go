package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgflag/internal/cli"
	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/testutil"
	"github.com/arthur-debert/pkgflag/pkg/ui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	fs         afero.Fs
	configPath string
}

func setup(t *testing.T) *env {
	t.Helper()
	testutil.Isolate(t)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[paths]
config_root = "/etc/portage"
repository = "/repo"

[output]
color = "never"
`), 0644))

	return &env{fs: testutil.NewMemFS(t, "/repo", testutil.PortageRepo()), configPath: configPath}
}

func (e *env) write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(e.fs, path, []byte(content), 0644))
}

func (e *env) read(t *testing.T, path string) string {
	t.Helper()
	return testutil.ReadFile(t, e.fs, path)
}

func (e *env) execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmdWithOptions(cli.Options{Fs: e.fs, Stdout: &stdout, Stderr: &stderr})
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_EnableDisable(t *testing.T) {
	e := setup(t)

	stdout, stderr, err := e.execute("media-sound/mpd", "+alsa", "-lame")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, "media-sound/mpd alsa -lame\n", e.read(t, "/etc/portage/package.use"))
}

func TestRun_Keyword(t *testing.T) {
	e := setup(t)

	_, _, err := e.execute("app-misc/foo", "+~amd64", "+lic::MIT")
	require.NoError(t, err)
	assert.Equal(t, "app-misc/foo ~amd64\n", e.read(t, "/etc/portage/package.accept_keywords"))
	assert.Equal(t, "app-misc/foo MIT\n", e.read(t, "/etc/portage/package.license"))
}

func TestRun_Output(t *testing.T) {
	e := setup(t)
	e.write(t, "/etc/portage/package.use", "# audio\nmedia-sound/mpd alsa -ogg\n")

	stdout, _, err := e.execute("media-sound/mpd", "?*", "?lame")
	require.NoError(t, err)
	assert.Equal(t, "media-sound/mpd alsa ?lame -ogg\n", stdout)
	assert.Equal(t, "# audio\nmedia-sound/mpd alsa -ogg\n", e.read(t, "/etc/portage/package.use"))
}

func TestRun_Reset(t *testing.T) {
	e := setup(t)
	e.write(t, "/etc/portage/package.use", "media-sound/mpd alsa -ogg\napp-misc/foo alsa\n")

	_, _, err := e.execute("media-sound/mpd", "%use::*")
	require.NoError(t, err)
	assert.Equal(t, "app-misc/foo alsa\n", e.read(t, "/etc/portage/package.use"))
}

func TestRun_DryRun(t *testing.T) {
	e := setup(t)

	_, stderr, err := e.execute("--dry-run", "media-sound/mpd", "+alsa")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Would write /etc/portage/package.use")

	exists, err := afero.Exists(e.fs, "/etc/portage/package.use")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRun_Verbose(t *testing.T) {
	e := setup(t)

	_, stderr, err := e.execute("-v", "media-sound/mpd", "-ogg")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Updated /etc/portage/package.use")
}

func TestRun_ConfigRootFlag(t *testing.T) {
	e := setup(t)

	_, _, err := e.execute("--config-root", "/srv/portage", "media-sound/mpd", "+alsa")
	require.NoError(t, err)
	assert.Equal(t, "media-sound/mpd alsa\n", e.read(t, "/srv/portage/package.use"))
}

func TestRun_Warnings(t *testing.T) {
	e := setup(t)

	_, stderr, err := e.execute("app-misc/foo", "+bogus")
	require.NoError(t, err)
	assert.Equal(t, "Warning: bogus seems to be an incorrect flag for app-misc/foo\n", stderr)
	assert.Equal(t, "app-misc/foo bogus\n", e.read(t, "/etc/portage/package.use"))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    errors.ErrorCode
		message string
	}{
		{"unknown namespace", []string{"app-misc/foo", "+nope::x"}, errors.ErrInvalidNamespace,
			"Error: +nope::x: incorrect namespace in arg"},
		{"wildcard namespace", []string{"app-misc/foo", "%*::"}, errors.ErrNotImplemented,
			"Error: %*::: *:: namespace support not implemented yet"},
		{"no packages", []string{"--", "+alsa"}, errors.ErrNotImplemented,
			"Error: Global actions are not supported yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setup(t)
			_, _, err := e.execute(tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.Equal(t, tt.message, ui.FormatError(err))

			assert.False(t, testutil.Exists(t, e.fs, "/etc/portage/package.use"))
		})
	}
}

func TestRun_BadConfig(t *testing.T) {
	e := setup(t)
	e.configPath = filepath.Join(t.TempDir(), "missing.toml")

	_, _, err := e.execute("app-misc/foo", "+alsa")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRun_NoArgsShowsHelp(t *testing.T) {
	e := setup(t)

	stdout, _, err := e.execute()
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
}

func TestVersionCmd(t *testing.T) {
	e := setup(t)

	stdout, _, err := e.execute("version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pkgflag version dev")
}

func TestNamespacesCmd(t *testing.T) {
	e := setup(t)
	e.write(t, "/etc/portage/package.use", "media-sound/mpd alsa\napp-misc/foo -X\n")

	stdout, _, err := e.execute("namespaces")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package.accept_keywords")
	assert.Contains(t, stdout, "USE flag")
	assert.Contains(t, stdout, "2")
}

func TestGenconfigCmd(t *testing.T) {
	e := setup(t)

	stdout, _, err := e.execute("genconfig")
	require.NoError(t, err)
	assert.Contains(t, stdout, `# config_root = "/etc/portage"`)

	stdout, _, err = e.execute("genconfig", "--effective")
	require.NoError(t, err)
	assert.Contains(t, stdout, "/repo")
	assert.Contains(t, stdout, "never")
}

func TestCompletionCmd(t *testing.T) {
	e := setup(t)

	stdout, _, err := e.execute("completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pkgflag")

	_, _, err = e.execute("completion", "tcsh")
	assert.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	e := setup(t)

	stdout, _, err := e.execute("help", "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "namespaces")
	assert.Contains(t, stdout, "tokens")
	assert.Contains(t, stdout, "--dry-run")

	stdout, _, err = e.execute("help", "tokens")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tokens")
	assert.Contains(t, stdout, "media-sound/mpd")
}
