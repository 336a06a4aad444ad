package cli

import (
	"fmt"

	"github.com/arthur-debert/pkgflag/pkg/actions"
	"github.com/arthur-debert/pkgflag/pkg/config"
	"github.com/arthur-debert/pkgflag/pkg/flagstore"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/metadata"
	"github.com/arthur-debert/pkgflag/pkg/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type runner struct {
	opts   Options
	flags  *globalFlags
	logger zerolog.Logger
}

func newRunner(opts Options, flags *globalFlags) *runner {
	return &runner{
		opts:   opts,
		flags:  flags,
		logger: logging.GetLogger("cli"),
	}
}

// run processes the command-line tokens: resolve, apply, print, save.
func (r *runner) run(args []string) error {
	done := logging.LogOperationStart(r.logger, "run")
	defer done()

	cfg, err := r.flags.loadConfig()
	if err != nil {
		return err
	}
	color := ui.ColorEnabled(cfg.Output.Color, r.opts.Stdout)
	ui.SetupColor(color)

	cache, err := loadMetadata(r.opts.Fs, cfg)
	if err != nil {
		return err
	}

	warnings := ui.NewWarningWriter(r.opts.Stderr, ui.ColorEnabled(cfg.Output.Color, r.opts.Stderr))
	defer warnings.Flush()

	set := actions.NewActionSet(cache, warnings)
	for _, token := range args {
		if err := set.Append(token); err != nil {
			return err
		}
	}

	store, err := flagstore.Load(r.opts.Fs, cfg.Paths.ConfigRoot, cfg.NamespaceFiles())
	if err != nil {
		return err
	}

	out := ui.NewFlagWriter(r.opts.Stdout, color)
	if err := set.Apply(store, out); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	if r.flags.dryRun {
		for _, f := range store.DirtyFiles() {
			fmt.Fprintf(r.opts.Stderr, MsgDryRunWouldWrite, f.Path)
		}
		r.logger.Info().Msg(MsgDryRunNotice)
		return nil
	}

	written, err := store.Save(r.opts.Fs)
	for _, path := range written {
		r.logger.Info().Str("path", path).Msg("Updated flag file")
		if r.flags.verbosity > 0 {
			fmt.Fprintf(r.opts.Stderr, MsgWroteFile, path)
		}
	}
	return err
}

// listNamespaces prints the namespaces table.
func (r *runner) listNamespaces() error {
	cfg, err := r.flags.loadConfig()
	if err != nil {
		return err
	}
	ui.SetupColor(ui.ColorEnabled(cfg.Output.Color, r.opts.Stdout))

	store, err := flagstore.Load(r.opts.Fs, cfg.Paths.ConfigRoot, cfg.NamespaceFiles())
	if err != nil {
		return err
	}

	rows := make([]ui.NamespaceRow, 0, len(cfg.Namespaces))
	for _, name := range cfg.NamespaceNames() {
		ns := cfg.Namespaces[name]
		rows = append(rows, ui.NamespaceRow{
			Name:        name,
			Description: ns.Description,
			File:        ns.File,
			Entries:     store.EntryCount(name),
		})
	}
	return ui.RenderNamespaces(r.opts.Stdout, rows)
}

// loadMetadata builds the metadata cache from the repository and the
// catalog. Only configured namespaces are resolvable; their descriptions
// come from the configuration.
func loadMetadata(fs afero.Fs, cfg *config.Config) (*metadata.Cache, error) {
	cache := metadata.NewCache()

	if cfg.Paths.Repository != "" {
		if err := metadata.LoadRepository(fs, cfg.Paths.Repository, cache); err != nil {
			return nil, err
		}
	}
	if cfg.Paths.Catalog != "" {
		if err := metadata.LoadCatalog(fs, cfg.Paths.Catalog, cache); err != nil {
			return nil, err
		}
	}

	names := cfg.NamespaceNames()
	for _, name := range names {
		desc := cfg.Namespaces[name].Description
		if desc == "" {
			desc = name
		}
		cache.AddNamespace(name, desc)
	}
	cache.Retain(names...)
	return cache, nil
}
