// Package topics adds topic-based help to a Cobra command tree. Topics are
// text or markdown files read from an fs.FS, usually an embedded one, and
// are served by "help <topic>" next to the regular command help.
package topics
