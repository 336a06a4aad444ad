// Package ui renders pkgflag's terminal output: colored flag lines,
// warnings, errors and the namespace table. Color is decided once per run
// with ColorEnabled and SetupColor; every helper degrades to plain text
// when it is off.
package ui
