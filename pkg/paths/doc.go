// Package paths centralizes pkgflag's file locations. Per-user files follow
// the XDG Base Directory specification; paths read from configuration are
// normalized here before use.
package paths
