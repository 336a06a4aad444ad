// Package pattern implements the glob matching used for flag identifiers.
//
// A Pattern is compared against flag names with shell glob semantics
// (`*`, `?`, `[...]`), case-sensitively and over the whole name. `*` and `?`
// match any character including '/'. Backslashes and braces have no special
// meaning.
package pattern
