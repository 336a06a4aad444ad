// Package flagstore holds flag records in memory and reads and writes them
// in the Portage line format:
//
//	# comment
//	media-sound/mpd lame -ogg   # trailing comment
//
// Every namespace maps to one file or to a directory of files. Comments,
// blank lines and untouched entries are written back verbatim; only files
// with modified, added or removed entries are rewritten by Save.
package flagstore
