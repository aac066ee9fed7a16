package application

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// copiedTimeoutMillis is how long the copy button shows its "copied"
// acknowledgment before reverting.
const copiedTimeoutMillis = 2000

// MarkdownRenderer converts a post body into sanitized display HTML.
type MarkdownRenderer interface {
	Render(body string) (template.HTML, error)
}

type MarkdownRendererImpl struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

var _ MarkdownRenderer = (*MarkdownRendererImpl)(nil)

func NewMarkdownRenderer() *MarkdownRendererImpl {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
				highlighting.WithFormatOptions(
					chromahtml.WithLineNumbers(true),
					chromahtml.WithClasses(true),
				),
				highlighting.WithWrapperRenderer(renderCodeWidget),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
			ghtml.WithXHTML(),
			ghtml.WithUnsafe(),
		),
	)

	return &MarkdownRendererImpl{
		md:        md,
		sanitizer: newSanitizer(),
	}
}

// Render converts markdown to HTML and sanitizes the result, so raw HTML
// embedded in a post body cannot reach the page unchecked.
func (r *MarkdownRendererImpl) Render(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return template.HTML(r.sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// renderCodeWidget wraps language-tagged fenced blocks in the copy-button
// widget. Blocks without a language, or that chroma could not highlight,
// fall back to a plain pre/code pair.
func renderCodeWidget(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	lang, hasLang := c.Language()
	if !hasLang || !c.Highlighted() {
		if entering {
			_, _ = w.WriteString("<pre><code>")
		} else {
			_, _ = w.WriteString("</code></pre>")
		}
		return
	}

	if entering {
		_, _ = fmt.Fprintf(w, `<div class="code-widget" data-language="%s">`, lang)
		_, _ = fmt.Fprintf(w, `<div class="code-widget-toolbar"><span class="code-widget-language">%s</span>`, lang)
		_, _ = fmt.Fprintf(w, `<button type="button" class="code-widget-copy" data-copied-label="Copied!" data-copied-timeout-ms="%d">Copy</button></div>`, copiedTimeoutMillis)
	} else {
		_, _ = w.WriteString("</div>")
	}
}

// newSanitizer extends the stock UGC policy just enough to keep chroma's
// class-based highlighting and the copy-button widget intact.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("div", "span", "pre", "code", "button")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("type", "data-copied-label", "data-copied-timeout-ms").OnElements("button")
	p.AllowAttrs("data-language").OnElements("div")
	return p
}
