package tui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

//nolint:gochecknoglobals // cached renderer for performance
var (
	glamourRenderer     *glamour.TermRenderer
	glamourRendererOnce sync.Once
)

// getGlamourRenderer returns a cached glamour renderer for markdown rendering.
// Returns nil if the renderer cannot be created.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// RenderMarkdown renders markdown for terminal display. When styled
// rendering is unavailable the raw markdown comes back unchanged, so callers
// can always print the result.
func RenderMarkdown(markdown string) string {
	r := getGlamourRenderer()
	if r == nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
