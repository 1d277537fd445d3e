package render

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/siteforge-dev/siteforge/internal/logfields"
)

// md converts freeText markdown into HTML at generation time, so generated
// projects carry plain markup and no markdown runtime.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownHTML renders markdown to HTML. Conversion failures degrade to the
// escaped source text inside a paragraph rather than failing the page.
func MarkdownHTML(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		slog.Warn("Markdown conversion failed, emitting raw text", logfields.Error(err))
		return "<p>" + escapeHTML(source) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
