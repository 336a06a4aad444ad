package actions

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/resolver"
	"github.com/arthur-debert/pkgflag/pkg/types"
)

// Action is one flag operation. It starts out holding the raw body of a
// single token; Clarify resolves it to a namespace and an identifier, after
// which more identifiers may be merged in.
type Action struct {
	op          Operator
	raw         string
	namespace   string
	identifiers []types.Identifier
	resolved    bool
	// unmatched holds the patterns the last Apply had to skip
	unmatched []string
}

// Parse turns a command-line token into an unresolved Action. Tokens that do
// not start with an operator sigil yield an ErrNotAnAction error.
func Parse(token string) (*Action, error) {
	if token == "" {
		return nil, errors.New(errors.ErrNotAnAction, "empty token")
	}
	op, ok := OperatorFor(token[0])
	if !ok {
		return nil, errors.Newf(errors.ErrNotAnAction, "%s is not an action", token).
			WithDetail("token", token)
	}
	return New(op, token[1:]), nil
}

// New returns an unresolved action holding body.
func New(op Operator, body string) *Action {
	return &Action{op: op, raw: body}
}

// NewResolved returns an action that is already bound to namespace.
func NewResolved(op Operator, namespace string, ids ...types.Identifier) *Action {
	a := &Action{op: op, namespace: namespace, resolved: true}
	for _, id := range ids {
		a.Append(id)
	}
	return a
}

func (a *Action) Operator() Operator { return a.op }

// Namespace is empty until the action is resolved.
func (a *Action) Namespace() string { return a.namespace }

func (a *Action) Resolved() bool { return a.resolved }

// Raw returns the token body the action was created from.
func (a *Action) Raw() string { return a.raw }

// Identifiers returns a copy of the identifier set in insertion order.
func (a *Action) Identifiers() []types.Identifier {
	out := make([]types.Identifier, len(a.identifiers))
	copy(out, a.identifiers)
	return out
}

func (a *Action) String() string {
	names := make([]string, len(a.identifiers))
	for i, id := range a.identifiers {
		names[i] = id.Text
	}
	if !a.resolved {
		return fmt.Sprintf("%c%s", a.op.Sigil(), a.raw)
	}
	return fmt.Sprintf("%c%s::{%s}", a.op.Sigil(), a.namespace, strings.Join(names, ","))
}

// Clarify resolves the raw body against packages. It returns the warnings
// produced on the way and, when resolution failed, an error. Calling it on
// an action that was already resolved panics.
func (a *Action) Clarify(packages []string, cache types.MetadataCache) ([]string, error) {
	if a.resolved {
		panic(fmt.Sprintf("actions: Clarify called on resolved action %s", a))
	}

	res := resolver.Resolve(a.raw, packages, cache)
	if err := res.Err(); err != nil {
		return res.Warnings, err
	}

	a.namespace = res.Namespace
	a.identifiers = []types.Identifier{res.Identifier}
	a.resolved = true
	return res.Warnings, nil
}

// Append adds id unless an equal identifier is already present.
func (a *Action) Append(id types.Identifier) {
	for _, have := range a.identifiers {
		if have == id {
			return
		}
	}
	a.identifiers = append(a.identifiers, id)
}

// Merge adds the identifiers of other. Both actions must be resolved and
// share operator and namespace.
func (a *Action) Merge(other *Action) {
	if !a.resolved || !other.resolved {
		panic("actions: Merge called on unresolved action")
	}
	if a.op != other.op || a.namespace != other.namespace {
		panic(fmt.Sprintf("actions: cannot merge %s into %s", other, a))
	}
	for _, id := range other.identifiers {
		a.Append(id)
	}
}

// Apply runs the action against the records of packages in store. Output
// lines are written to out.
func (a *Action) Apply(packages []string, store types.FlagStore, out io.Writer) error {
	if !a.resolved {
		return errors.Newf(errors.ErrContract, "action %s applied before being resolved", a)
	}
	if len(packages) == 0 {
		return errors.Newf(errors.ErrNotImplemented, "%s needs at least one package", a.op)
	}
	ns, ok := store.Namespace(a.namespace)
	if !ok {
		return errors.Newf(errors.ErrContract, "Unexpected namespace %s in action %s", a.namespace, a).
			WithDetail("namespace", a.namespace)
	}

	a.unmatched = nil
	switch a.op {
	case Enable:
		a.setModifier(packages, ns, types.ModifierOn)
	case Disable:
		a.setModifier(packages, ns, types.ModifierOff)
	case Reset:
		a.reset(packages, ns)
	case Output:
		return a.output(packages, ns, out)
	default:
		return errors.Newf(errors.ErrInternal, "unknown operator %s", a.op)
	}
	return nil
}

// Unmatched describes the Enable/Disable patterns that selected no flag
// during the last Apply, one message per package.
func (a *Action) Unmatched() []string {
	return a.unmatched
}

func (a *Action) setModifier(packages []string, ns types.FlagNamespace, modifier string) {
	for _, pkg := range packages {
		for _, id := range a.identifiers {
			f := effectiveFlag(ns, pkg, id)
			if f == nil {
				a.unmatched = append(a.unmatched, fmt.Sprintf("%s matches no flag set for %s", id.Text, pkg))
				continue
			}
			f.Modifier = modifier
		}
	}
}

// effectiveFlag returns the first flag of pkg selected by id. Without one, a
// literal is added to the package's last record (or to a new record); a
// pattern yields nil.
func effectiveFlag(ns types.FlagNamespace, pkg string, id types.Identifier) *types.Flag {
	entries := ns.Entries(pkg)
	for _, e := range entries {
		if flags := e.Lookup(id); len(flags) > 0 {
			e.MarkModified()
			return flags[0]
		}
	}
	if id.Pattern {
		return nil
	}

	var target types.FlagEntry
	if len(entries) > 0 {
		target = entries[len(entries)-1]
	} else {
		target = ns.Append(pkg)
	}
	return target.Append(id.Text)
}

func (a *Action) reset(packages []string, ns types.FlagNamespace) {
	for _, pkg := range packages {
		for _, e := range ns.Entries(pkg) {
			for _, id := range a.identifiers {
				e.Delete(id)
			}
			if e.Len() == 0 {
				ns.Remove(e)
			}
		}
	}
}

func (a *Action) output(packages []string, ns types.FlagNamespace, out io.Writer) error {
	for _, pkg := range packages {
		rendered := make(map[string]string)
		for _, e := range ns.Entries(pkg) {
			for _, id := range a.identifiers {
				for _, f := range e.Lookup(id) {
					if _, seen := rendered[f.Name]; !seen {
						rendered[f.Name] = f.String()
					}
				}
			}
		}
		for _, id := range a.identifiers {
			if id.Pattern {
				continue
			}
			if _, seen := rendered[id.Text]; !seen {
				rendered[id.Text] = "?" + id.Text
			}
		}
		if len(rendered) == 0 {
			continue
		}

		names := make([]string, 0, len(rendered))
		for name := range rendered {
			names = append(names, name)
		}
		sort.Strings(names)

		fields := make([]string, 0, len(names)+1)
		fields = append(fields, pkg)
		for _, name := range names {
			fields = append(fields, rendered[name])
		}
		if _, err := fmt.Fprintln(out, strings.Join(fields, " ")); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to write output")
		}
	}
	return nil
}
