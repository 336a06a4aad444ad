package styles_test

import (
	"testing"

	"github.com/arthur-debert/pkgflag/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{
		styles.Header, styles.Error, styles.Warning, styles.Package,
		styles.FlagOn, styles.FlagOff, styles.Unknown, styles.Muted,
	} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "plain", styles.GetStyle("NoSuchStyle").Render("plain"))
}

func TestRender_NoColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "-ogg", styles.Render(styles.FlagOff, "-ogg"))
}

func TestLoadStylesFromData(t *testing.T) {
	saved := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = saved })

	err := styles.LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Package: {bold: true, foreground: accent}
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Package").GetBold())
	assert.Len(t, styles.StyleRegistry, 1)

	err = styles.LoadStylesFromData([]byte("styles:\n  Package: {foreground: missing}\n"))
	assert.Error(t, err)
	assert.Len(t, styles.StyleRegistry, 1, "failed loads keep the previous registry")

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
