package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName names the per-user directories.
	AppName = "pkgflag"

	ConfigFileName = "config.toml"
	LogFileName    = AppName + ".log"

	// EnvHome is consulted when the home directory cannot be determined
	// otherwise.
	EnvHome = "HOME"
)

// ConfigFile returns the per-user configuration file
// (~/.config/pkgflag/config.toml by default).
func ConfigFile() string {
	// xdg caches the environment at init; tests and wrappers may change it.
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// LogFile returns the log file location
// (~/.local/state/pkgflag/pkgflag.log by default).
func LogFile() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppName, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory. "~user" forms and
// paths that cannot be expanded are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Normalize expands ~ and environment variables, makes path absolute and
// cleans it. The empty path stays empty.
func Normalize(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	path = ExpandHome(os.ExpandEnv(path))
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
