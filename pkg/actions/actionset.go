package actions

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/types"
	"github.com/rs/zerolog"
)

// ActionSet accumulates the packages and actions of one command line.
type ActionSet struct {
	cache    types.MetadataCache
	packages []string
	actions  []*Action
	warnings io.Writer
	logger   zerolog.Logger
}

// NewActionSet returns an empty set resolving names with cache. Resolution
// warnings are written to warnings, which may be nil.
func NewActionSet(cache types.MetadataCache, warnings io.Writer) *ActionSet {
	if warnings == nil {
		warnings = io.Discard
	}
	return &ActionSet{
		cache:    cache,
		warnings: warnings,
		logger:   logging.GetLogger("actions"),
	}
}

// Packages returns the target packages in the order they were added.
func (s *ActionSet) Packages() []string {
	out := make([]string, len(s.packages))
	copy(out, s.packages)
	return out
}

// Actions returns the merged actions in application order.
func (s *ActionSet) Actions() []*Action {
	out := make([]*Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Append routes a command-line token: operator tokens become actions, any
// other token is a package.
func (s *ActionSet) Append(token string) error {
	if token == "" {
		return errors.New(errors.ErrInvalidInput, "empty argument")
	}

	a, err := Parse(token)
	if errors.IsErrorCode(err, errors.ErrNotAnAction) {
		s.AddPackage(token)
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.AddAction(a); err != nil {
		if pe, ok := errors.AsPkgflagError(err); ok {
			pe.WithDetail("token", token)
		}
		return err
	}
	return nil
}

// AddPackage adds a target for the actions added after it.
func (s *ActionSet) AddPackage(pkg string) {
	s.logger.Debug().Str("package", pkg).Msg("Adding package")
	s.packages = append(s.packages, pkg)
}

// AddAction resolves a against the packages added so far and merges it into
// the set.
func (s *ActionSet) AddAction(a *Action) error {
	if !a.Resolved() {
		warnings, err := a.Clarify(s.packages, s.cache)
		for _, w := range warnings {
			s.logger.Warn().Str("arg", a.Raw()).Msg(w)
			fmt.Fprintf(s.warnings, "Warning: %s\n", w)
		}
		if err != nil {
			return err
		}
	}

	for _, have := range s.actions {
		if have.Operator() == a.Operator() && have.Namespace() == a.Namespace() {
			have.Merge(a)
			s.logger.Debug().Stringer("action", have).Msg("Merged action")
			return nil
		}
	}

	s.actions = append(s.actions, a)
	sort.SliceStable(s.actions, func(i, j int) bool {
		return s.actions[i].Operator() < s.actions[j].Operator()
	})
	s.logger.Debug().Stringer("action", a).Msg("Added action")
	return nil
}

// Apply applies every action to the packages of the set, in operator order.
func (s *ActionSet) Apply(store types.FlagStore, out io.Writer) error {
	if len(s.packages) == 0 {
		return errors.New(errors.ErrNotImplemented, "Global actions are not supported yet")
	}

	for _, a := range s.actions {
		if _, ok := store.Namespace(a.Namespace()); !ok {
			return errors.Newf(errors.ErrContract, "Unexpected namespace %s in ActionSet.Apply()", a.Namespace()).
				WithDetail("namespace", a.Namespace())
		}
		s.logger.Info().Stringer("action", a).Strs("packages", s.packages).Msg("Applying action")
		if err := a.Apply(s.packages, store, out); err != nil {
			return err
		}
		for _, msg := range a.Unmatched() {
			s.logger.Warn().Stringer("action", a).Msg(msg)
			fmt.Fprintf(s.warnings, "Warning: %s\n", msg)
		}
	}
	return nil
}
