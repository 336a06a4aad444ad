// Package config loads pkgflag's configuration.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/pkgflag/config.toml or an explicit path
//  3. PKGFLAG_* environment variables (PKGFLAG_PATHS_CONFIG_ROOT sets paths.config_root)
//  4. overrides passed by the caller, usually from command-line flags
package config
