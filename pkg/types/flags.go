package types

import "github.com/arthur-debert/pkgflag/pkg/pattern"

// Flag modifiers as they appear in flag files.
const (
	ModifierOn  = ""
	ModifierOff = "-"
)

// Flag is one flag token of a flag record: a name and its modifier.
type Flag struct {
	Name     string
	Modifier string
}

// String renders the flag the way it is written in flag files.
func (f *Flag) String() string {
	return f.Modifier + f.Name
}

// Enabled reports whether the flag is in the "on" state.
func (f *Flag) Enabled() bool {
	return f.Modifier == ModifierOn
}

// Identifier selects flags by name. A pattern identifier selects every flag
// whose name matches the glob in Text.
type Identifier struct {
	Text    string
	Pattern bool
}

// Literal returns an identifier matching exactly name.
func Literal(name string) Identifier {
	return Identifier{Text: name}
}

// Glob returns a pattern identifier.
func Glob(expr string) Identifier {
	return Identifier{Text: expr, Pattern: true}
}

// Matches reports whether the flag name is selected by the identifier.
func (id Identifier) Matches(name string) bool {
	if id.Pattern {
		return pattern.Match(id.Text, name)
	}
	return id.Text == name
}

func (id Identifier) String() string {
	return id.Text
}
