package metadata_test

import (
	"testing"

	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *metadata.Cache {
	c := metadata.NewCache()
	c.AddNamespace("use", "USE flag")
	c.AddNamespace("kw", "keyword")
	c.AddGlobal("use", "alsa", "X", "test")
	c.AddGlobal("kw", "amd64", "~amd64", "test")
	c.AddLocal("media-sound/mpd", "use", "lame", "ogg")
	c.AddLocal("media-video/mpv", "use", "vapoursynth")
	return c
}

func TestDescribe(t *testing.T) {
	c := newTestCache()

	desc, err := c.Describe("use")
	require.NoError(t, err)
	assert.Equal(t, "USE flag", desc)

	_, err = c.Describe("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNamespace))
}

func TestWhatIs(t *testing.T) {
	c := newTestCache()

	tests := []struct {
		name       string
		identifier string
		pkg        string
		restrict   string
		want       []string
	}{
		{"global flag", "alsa", "media-sound/mpd", "", []string{"use"}},
		{"local flag", "lame", "media-sound/mpd", "", []string{"use"}},
		{"other package local flag", "vapoursynth", "media-sound/mpd", "", nil},
		{"keyword", "~amd64", "media-sound/mpd", "", []string{"kw"}},
		{"ambiguous", "test", "media-sound/mpd", "", []string{"kw", "use"}},
		{"restricted", "test", "media-sound/mpd", "kw", []string{"kw"}},
		{"restricted miss", "alsa", "media-sound/mpd", "kw", nil},
		{"unknown", "bogus", "media-sound/mpd", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.WhatIs(tt.identifier, tt.pkg, tt.restrict))
		})
	}
}

func TestGlobWhatIs(t *testing.T) {
	c := newTestCache()

	assert.Equal(t, []string{"use"}, c.GlobWhatIs("vapoursynth", ""))
	assert.Equal(t, []string{"kw", "use"}, c.GlobWhatIs("test", ""))
	assert.Equal(t, []string{"use"}, c.GlobWhatIs("test", "use"))
	assert.Nil(t, c.GlobWhatIs("bogus", ""))
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, []string{"kw", "use"}, newTestCache().Namespaces())
}

func TestSuggest(t *testing.T) {
	c := newTestCache()

	assert.Equal(t, []string{"alsa"}, c.Suggest("alas", "use"))
	assert.Contains(t, c.Suggest("vapour", "use"), "vapoursynth")
	assert.Empty(t, c.Suggest("completely-unrelated", "use"))
}

func TestRetain(t *testing.T) {
	c := newTestCache()
	c.AddLocal("media-sound/mpd", "video", "test")

	assert.Equal(t, []string{"kw", "use"}, c.WhatIs("test", "media-sound/mpd", ""),
		"unregistered namespaces are never candidates")

	c.Retain("use")
	assert.Equal(t, []string{"use"}, c.Namespaces())
	assert.Equal(t, []string{"use"}, c.WhatIs("test", "media-sound/mpd", ""))
	assert.Nil(t, c.GlobWhatIs("amd64", ""))

	_, err := c.Describe("kw")
	assert.Error(t, err)
}
