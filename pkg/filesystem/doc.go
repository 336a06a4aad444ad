// Package filesystem holds the file helpers pkgflag uses on top of afero.
// Flag files are replaced atomically so a failed write never leaves a
// truncated package.use behind.
package filesystem
