package resolver

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/logging"
	"github.com/arthur-debert/pkgflag/pkg/pattern"
	"github.com/arthur-debert/pkgflag/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultNamespace is used for patterns without a namespace and for names
// nothing else claims.
const DefaultNamespace = "use"

const (
	namespaceSeparator = "::"
	anyNamespace       = "*"
	matchAll           = "*"
)

// Outcome tags a Resolution.
type Outcome int

const (
	Resolved Outcome = iota
	Ambiguous
	InvalidNamespace
	Unimplemented
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case InvalidNamespace:
		return "invalid-namespace"
	case Unimplemented:
		return "unimplemented"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Resolution is the result of resolving one token body.
type Resolution struct {
	Outcome    Outcome
	Namespace  string
	Identifier types.Identifier
	// Candidates lists the competing namespaces of an Ambiguous resolution.
	Candidates []string
	// Warnings are user-facing notes about names that looked wrong but were
	// resolved anyway.
	Warnings []string
}

// Err converts a failed resolution into an error; it is nil when resolved.
func (r Resolution) Err() error {
	switch r.Outcome {
	case Resolved:
		return nil
	case Ambiguous:
		return errors.Newf(errors.ErrAmbiguousArgument, "Ambiguous argument: %s (matches %s).",
			r.Identifier.Text, strings.Join(r.Candidates, ", ")).
			WithDetail("matches", r.Candidates)
	case InvalidNamespace:
		return errors.New(errors.ErrInvalidNamespace, "incorrect namespace in arg").
			WithDetail("namespace", r.Namespace)
	case Unimplemented:
		return errors.New(errors.ErrNotImplemented, "*:: namespace support not implemented yet")
	default:
		return errors.Newf(errors.ErrInternal, "unexpected resolution outcome %s", r.Outcome)
	}
}

// Resolver resolves token bodies against a metadata cache.
type Resolver struct {
	cache  types.MetadataCache
	logger zerolog.Logger
}

// New returns a Resolver backed by cache.
func New(cache types.MetadataCache) *Resolver {
	return &Resolver{
		cache:  cache,
		logger: logging.GetLogger("resolver"),
	}
}

// Resolve is a shortcut for New(cache).Resolve(body, packages).
func Resolve(body string, packages []string, cache types.MetadataCache) Resolution {
	return New(cache).Resolve(body, packages)
}

// Resolve determines the namespace and identifier of body. packages are the
// target packages known so far; without any, names are resolved globally.
func (r *Resolver) Resolve(body string, packages []string) Resolution {
	hint, arg, failed, ok := r.splitNamespace(body)
	if !ok {
		r.logger.Debug().Str("arg", body).Stringer("outcome", failed.Outcome).Msg("Namespace prefix rejected")
		return failed
	}

	if arg == "" {
		arg = matchAll
	}

	if pattern.HasMeta(arg) {
		ns := hint
		if ns == "" {
			ns = DefaultNamespace
		}
		r.logger.Debug().Str("arg", arg).Str("namespace", ns).Msg("Resolved pattern")
		return Resolution{Outcome: Resolved, Namespace: ns, Identifier: types.Glob(arg)}
	}

	var res Resolution
	if len(packages) == 0 {
		res = r.resolveGlobal(arg, hint)
	} else {
		res = r.resolveForPackages(arg, hint, packages)
	}

	r.logger.Debug().
		Str("arg", arg).
		Strs("packages", packages).
		Stringer("outcome", res.Outcome).
		Str("namespace", res.Namespace).
		Strs("candidates", res.Candidates).
		Msg("Resolved literal")
	return res
}

// splitNamespace strips an optional "ns::" prefix. hint is the validated
// namespace, or empty when none (or "*") was given.
func (r *Resolver) splitNamespace(body string) (hint, arg string, failed Resolution, ok bool) {
	prefix, rest, found := strings.Cut(body, namespaceSeparator)
	if !found {
		return "", body, Resolution{}, true
	}

	if prefix == anyNamespace {
		if rest == "" {
			return "", "", Resolution{Outcome: Unimplemented, Identifier: types.Literal(rest)}, false
		}
		return "", rest, Resolution{}, true
	}

	if _, err := r.cache.Describe(prefix); err != nil {
		return "", "", Resolution{Outcome: InvalidNamespace, Namespace: prefix, Identifier: types.Literal(rest)}, false
	}
	return prefix, rest, Resolution{}, true
}

func (r *Resolver) resolveGlobal(arg, hint string) Resolution {
	res := Resolution{Outcome: Resolved, Identifier: types.Literal(arg)}

	matches := r.cache.GlobWhatIs(arg, hint)
	switch {
	case len(matches) > 1:
		res.Outcome = Ambiguous
		res.Candidates = matches
	case len(matches) == 1:
		res.Namespace = matches[0]
	case hint != "":
		res.Namespace = hint
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s seems to be an incorrect global %s", arg, r.describe(hint)))
		r.suggest(arg, hint)
	default:
		res.Namespace = DefaultNamespace
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%s seems to be an incorrect global flag", arg))
		r.suggest(arg, "")
	}
	return res
}

// resolveForPackages stops at the first package that knows arg. Packages
// that do not know it contribute a warning; a namespace settled on through
// the fallback restricts the lookups for the remaining packages.
func (r *Resolver) resolveForPackages(arg, hint string, packages []string) Resolution {
	res := Resolution{Outcome: Resolved, Identifier: types.Literal(arg)}
	ns := hint

	for _, pkg := range packages {
		matches := r.cache.WhatIs(arg, pkg, ns)
		if len(matches) > 1 {
			res.Outcome = Ambiguous
			res.Candidates = matches
			return res
		}
		if len(matches) == 1 {
			res.Namespace = matches[0]
			return res
		}

		var fallback []string
		if ns != "" {
			fallback = []string{ns}
		} else {
			fallback = r.cache.GlobWhatIs(arg, "")
		}

		switch {
		case len(fallback) > 1:
			res.Outcome = Ambiguous
			res.Candidates = fallback
			return res
		case len(fallback) == 1:
			ns = fallback[0]
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s seems to be an incorrect %s for %s", arg, r.describe(ns), pkg))
		default:
			ns = DefaultNamespace
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s seems to be an incorrect flag for %s", arg, pkg))
			r.suggest(arg, "")
		}
	}

	res.Namespace = ns
	return res
}

func (r *Resolver) describe(ns string) string {
	desc, err := r.cache.Describe(ns)
	if err != nil {
		return ns
	}
	return desc
}

// suggest logs close names for an unknown identifier when the cache can
// provide them.
func (r *Resolver) suggest(arg, ns string) {
	s, ok := r.cache.(types.Suggester)
	if !ok {
		return
	}
	if names := s.Suggest(arg, ns); len(names) > 0 {
		r.logger.Info().Str("arg", arg).Strs("suggestions", names).Msg("Did you mean one of these?")
	}
}
