package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pkgflag/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pkgflag/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pkgflag/internal/version.Date={{.Date}}
)

// Info is the multi-line version report of `pkgflag version`.
func Info() string {
	return "pkgflag version " + Version + "\n" +
		"  commit: " + Commit + "\n" +
		"  built:  " + Date + "\n"
}
