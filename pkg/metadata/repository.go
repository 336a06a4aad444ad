package metadata

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

// LoadRepository fills the cache from a Portage-style repository rooted at
// root. Missing files are skipped; a repository without any of them simply
// adds nothing.
func LoadRepository(fs afero.Fs, root string, c *Cache) error {
	useDesc := filepath.Join(root, "profiles", "use.desc")
	flags, err := readListFile(fs, useDesc, parseUseDescLine)
	if err != nil {
		return err
	}
	c.AddGlobal(NamespaceUse, flags...)

	archList := filepath.Join(root, "profiles", "arch.list")
	arches, err := readListFile(fs, archList, parseListLine)
	if err != nil {
		return err
	}
	for _, arch := range arches {
		c.AddGlobal(NamespaceKeywords, arch, "~"+arch)
	}

	licenses, err := readLicenses(fs, filepath.Join(root, "licenses"))
	if err != nil {
		return err
	}
	c.AddGlobal(NamespaceLicense, licenses...)

	metadataFiles, err := afero.Glob(fs, filepath.Join(root, "*", "*", "metadata.xml"))
	if err != nil {
		return errors.Wrap(err, errors.ErrMetadataLoad, "failed to scan repository")
	}
	for _, path := range metadataFiles {
		pkg := filepath.ToSlash(filepath.Join(
			filepath.Base(filepath.Dir(filepath.Dir(path))),
			filepath.Base(filepath.Dir(path)),
		))
		local, err := readMetadataXML(fs, path)
		if err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable metadata.xml")
			continue
		}
		if len(local) > 0 {
			c.AddLocal(pkg, NamespaceUse, local...)
		}
	}

	c.logger.Debug().
		Str("root", root).
		Int("globalFlags", len(flags)).
		Int("arches", len(arches)).
		Int("licenses", len(licenses)).
		Int("packages", len(metadataFiles)).
		Msg("Loaded repository metadata")
	return nil
}

// readListFile returns the names parsed from every non-comment line of path.
// A missing file yields no names.
func readListFile(fs afero.Fs, path string, parse func(string) (string, bool)) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrMetadataLoad, "failed to read %s", path).
			WithDetail("path", path)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := parse(line); ok {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataLoad, "failed to read %s", path)
	}
	return names, nil
}

// parseUseDescLine parses "flag - description".
func parseUseDescLine(line string) (string, bool) {
	name, _, ok := strings.Cut(line, " - ")
	name = strings.TrimSpace(name)
	return name, ok && name != ""
}

func parseListLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

func readLicenses(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrMetadataLoad, "failed to list %s", dir)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// readMetadataXML returns the local USE flags declared in a metadata.xml.
func readMetadataXML(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	var flags []string
	for _, flag := range doc.FindElements("./pkgmetadata/use/flag") {
		if name := flag.SelectAttrValue("name", ""); name != "" {
			flags = append(flags, name)
		}
	}
	return flags, nil
}
