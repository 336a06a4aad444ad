package pattern

import (
	"strings"

	"github.com/gobwas/glob"
)

// metaChars are the characters that turn an identifier into a pattern.
const metaChars = "*?["

// literalChars are glob syntax in gobwas/glob but ordinary characters in a
// flag pattern.
const literalChars = `\{}`

// Pattern is a glob that matches flag names.
type Pattern struct {
	expr string
	g    glob.Glob
}

// New compiles expr. A malformed glob (e.g. an unclosed bracket) only
// matches its literal text.
func New(expr string) Pattern {
	g, err := glob.Compile(quote(expr))
	if err != nil {
		return Pattern{expr: expr}
	}
	return Pattern{expr: expr, g: g}
}

// quote escapes the characters that only gobwas/glob treats specially. No
// separators are passed to Compile, so `*` and `?` also match '/'.
func quote(expr string) string {
	if !strings.ContainsAny(expr, literalChars) {
		return expr
	}
	var b strings.Builder
	for _, r := range expr {
		if strings.ContainsRune(literalChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// String returns the glob text.
func (p Pattern) String() string {
	return p.expr
}

// Matches reports whether candidate matches the whole pattern.
func (p Pattern) Matches(candidate string) bool {
	if p.g == nil {
		return candidate == p.expr
	}
	return p.g.Match(candidate)
}

// Match is a shortcut for New(expr).Matches(candidate).
func Match(expr, candidate string) bool {
	return New(expr).Matches(candidate)
}

// HasMeta reports whether s contains any glob metacharacter.
func HasMeta(s string) bool {
	return strings.ContainsAny(s, metaChars)
}
