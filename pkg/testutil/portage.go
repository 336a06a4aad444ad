package testutil

// MpdMetadata declares the local USE flag "lame" for media-sound/mpd.
const MpdMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE pkgmetadata SYSTEM "https://www.gentoo.org/dtd/metadata.dtd">
<pkgmetadata>
	<maintainer type="project">
		<email>sound@gentoo.org</email>
	</maintainer>
	<use>
		<flag name="lame">Support for MP3 streaming through Icecast2</flag>
	</use>
</pkgmetadata>
`

// PortageRepo is a minimal ebuild repository:
//   - global USE flags alsa, ogg and X
//   - keywords amd64, ~amd64, arm64 and ~arm64
//   - licenses GPL-2 and MIT
//   - the local USE flag lame for media-sound/mpd
func PortageRepo() FileTree {
	return FileTree{
		"profiles": FileTree{
			"use.desc":  "# global flags\nalsa - Add ALSA support\nogg - Add Ogg support\nX - Add X11 support\n",
			"arch.list": "amd64\narm64\n",
		},
		"licenses": FileTree{
			"GPL-2": "text",
			"MIT":   "text",
		},
		"media-sound": FileTree{
			"mpd": FileTree{
				"metadata.xml": MpdMetadata,
			},
		},
	}
}

// NamespaceFiles are the flag files of the default namespaces.
func NamespaceFiles() map[string]string {
	return map[string]string{
		"use": "package.use",
		"kw":  "package.accept_keywords",
		"lic": "package.license",
	}
}
