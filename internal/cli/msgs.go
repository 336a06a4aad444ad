package cli

// Command descriptions
const (
	MsgRootShort = "Edit per-package Portage flags from the command line"
	MsgRootLong  = `pkgflag enables, disables, resets and queries per-package flags such as
USE flags, keywords and licenses in the Portage configuration files.

Arguments are processed in order. A plain argument names a package; an
argument starting with an operator edits flags of the packages named before it:

  +flag   enable the flag
  -flag   disable the flag
  %flag   remove the flag from the flag files
  ?flag   print the current state of the flag

A flag may be qualified with a namespace (use::alsa, kw::~amd64, lic::MIT) and
may be a glob pattern (?*, %use::python_targets_*). Unqualified names are
looked up in the repository metadata.

Put -- before the first argument when it starts with a dash.`
	MsgRootExample = `  # Enable alsa and disable ogg for mpd
  pkgflag media-sound/mpd +alsa -ogg

  # Accept the testing keyword
  pkgflag app-editors/neovim +kw::~amd64

  # Show every flag set for two packages
  pkgflag media-video/mpv media-sound/mpd '?*'

  # Drop all python target overrides
  pkgflag dev-lang/foo '%use::python_targets_*'`

	MsgVersionShort    = "Print version information"
	MsgNamespacesShort = "List the configured flag namespaces"
	MsgNamespacesLong  = "List every configured namespace with its flag file and the number of package entries it holds."
	MsgGenconfigShort  = "Print a configuration file"
	MsgGenconfigLong   = `Print the default configuration with every value commented out, ready to be
saved as $XDG_CONFIG_HOME/pkgflag/config.toml. With --effective, print the
configuration currently in effect instead.`
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(pkgflag completion bash)

Zsh:
  $ pkgflag completion zsh > "${fpath[1]}/_pkgflag"

Fish:
  $ pkgflag completion fish | source

PowerShell:
  PS> pkgflag completion powershell | Out-String | Invoke-Expression
`
)

// Status messages
const (
	MsgDryRunWouldWrite = "Would write %s\n"
	MsgDryRunNotice     = "DRY RUN MODE - No changes were made"
	MsgWroteFile        = "Updated %s\n"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Show which files would change without writing them"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/pkgflag/config.toml)"
	MsgFlagConfigRoot = "Portage configuration directory (overrides paths.config_root)"
	MsgFlagEffective  = "Print the effective configuration instead of the commented defaults"
)
