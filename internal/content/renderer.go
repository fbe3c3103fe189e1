// Package content turns user-written markdown into HTML that is safe to
// embed in the app.
package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer renders journal entries, community posts and comments.
type Renderer interface {
	// Markdown converts markdown to sanitized HTML.
	Markdown(src string) (string, error)
	// Plain strips every tag from s.
	Plain(s string) string
}

type renderer struct {
	engine goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() Renderer {
	return &renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
		),
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return string(r.ugc.SanitizeBytes(buf.Bytes())), nil
}

func (r *renderer) Plain(s string) string {
	return strings.TrimSpace(r.strict.Sanitize(s))
}
