package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pkgflag/internal/version"
	"github.com/arthur-debert/pkgflag/pkg/config"
	"github.com/arthur-debert/pkgflag/pkg/filesystem"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds what a command run reads from and writes to.
type Options struct {
	// Fs holds the flag files and the repository metadata.
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Fs == nil {
		o.Fs = filesystem.NewOS()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	verbosity  int
	dryRun     bool
	configPath string
	configRoot string
}

// loadConfig loads the configuration, applying --config and --config-root.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	overrides := make(map[string]interface{})
	if f.configRoot != "" {
		overrides["paths.config_root"] = f.configRoot
	}
	return config.Load(config.Options{Path: f.configPath, Overrides: overrides})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected IO.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "pkgflag [flags] <package|token>...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			logging.LogCommand(cmd.Name(), args)
			return newRunner(opts, flags).run(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	// Flags stop at the first package so that "-flag" tokens reach RunE.
	rootCmd.Flags().SetInterspersed(false)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.configRoot, "config-root", "", MsgFlagConfigRoot)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newNamespacesCmd(opts, flags))
	rootCmd.AddCommand(newGenconfigCmd(flags))
	rootCmd.AddCommand(newCompletionCmd())
	initTopics(rootCmd, opts.Stdout)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}

func newNamespacesCmd(opts Options, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces",
		Short: MsgNamespacesShort,
		Long:  MsgNamespacesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(opts, flags).listNamespaces()
		},
	}
}

func newGenconfigCmd(flags *globalFlags) *cobra.Command {
	var effective bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long:  MsgGenconfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !effective {
				fmt.Fprintln(cmd.OutOrStdout(), config.GenerateConfigContent())
				return nil
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
