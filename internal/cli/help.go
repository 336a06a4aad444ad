package cli

import (
	"embed"
	"io"
	"io/fs"

	"github.com/arthur-debert/pkgflag/pkg/cobrax/topics"
	"github.com/arthur-debert/pkgflag/pkg/config"
	"github.com/arthur-debert/pkgflag/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs "help <topic>". Markdown is styled only when out is
// a color-capable terminal.
func initTopics(rootCmd *cobra.Command, out io.Writer) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	renderer := &topics.GlamourRenderer{Style: "notty"}
	if ui.ColorEnabled(config.ColorAuto, out) {
		renderer.Style = "auto"
	}

	if _, err := topics.Initialize(rootCmd, sub, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
