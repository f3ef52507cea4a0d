// Package htmldoc renders a document snapshot into the legacy
// word-processor format: a self-contained styled HTML document, prefixed
// with a UTF-8 byte-order mark so the importing application detects the
// encoding, and served under the application/msword MIME type.
package htmldoc

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/suratkit/suratkit/assets"
	"github.com/suratkit/suratkit/format"
	"github.com/suratkit/suratkit/layout"
	"github.com/suratkit/suratkit/locale"
	"github.com/suratkit/suratkit/model"
)

// MIMEType is the media type of the produced artifact.
const MIMEType = "application/msword;charset=utf-8"

// Extension is the filename extension of the produced artifact.
const Extension = ".doc"

// stylePreamble is the fixed, data-independent style block.
const stylePreamble = `body { font-family: "Times New Roman", serif; font-size: 11pt; line-height: 1.5; }
h1, h2, h3 { font-family: "Times New Roman", serif; }
p { margin: 0 0 10pt 0; }
.justify { text-align: justify; }
.center { text-align: center; }
.right { text-align: right; }
.quote { font-style: italic; margin-left: 20pt; margin-right: 20pt; text-align: center; }
.list-item { margin-left: 20pt; }
table { border-collapse: collapse; }`

// Renderer produces legacy-format documents.
type Renderer struct {
	resolver *assets.Resolver
	logger   *slog.Logger
	table    locale.Table
}

// Option configures the renderer.
type Option func(*Renderer)

// WithResolver sets the asset resolver used for signature images.
func WithResolver(r *assets.Resolver) Option {
	return func(w *Renderer) {
		w.resolver = r
	}
}

// WithLogger sets the logger for per-image recovery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(w *Renderer) {
		w.logger = l
	}
}

// WithLocale sets the label/date table.
func WithLocale(t locale.Table) Option {
	return func(w *Renderer) {
		w.table = t
	}
}

// WithHTTPClient sets the HTTP client handed to the default resolver.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Renderer) {
		w.resolver = assets.NewResolver(assets.WithClient(c))
	}
}

// NewRenderer creates a legacy renderer.
func NewRenderer(opts ...Option) *Renderer {
	w := &Renderer{
		logger: slog.Default(),
		table:  locale.Indonesian(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.resolver == nil {
		w.resolver = assets.NewResolver(assets.WithLogger(w.logger))
	}
	return w
}

// Filename returns the artifact filename for the given metadata.
func (w *Renderer) Filename(meta model.DocumentMetadata) string {
	return w.table.Filename(meta.Title, Extension)
}

// Render walks the snapshot into the legacy document bytes: UTF-8 BOM
// followed by the markup. Letterhead and logo images are embedded by
// reference; the signature image is resolved to bytes and inlined as a
// data URI, falling back to blank space when resolution fails.
func (w *Renderer) Render(ctx context.Context, meta model.DocumentMetadata, blocks []model.Block) ([]byte, error) {
	elements := layout.Plan(meta, blocks, w.table)

	var body strings.Builder
	for _, el := range elements {
		switch el.Kind {
		case layout.ElementText:
			w.writeText(&body, el)
		case layout.ElementImage:
			w.writeImage(ctx, &body, el)
		}
	}

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&doc, "<title>%s</title>\n", html.EscapeString(meta.Title))
	doc.WriteString("<style>\n" + stylePreamble + "\n</style>\n</head>\n<body>\n")
	doc.WriteString(body.String())
	doc.WriteString("</body>\n</html>\n")

	return withBOM(doc.String())
}

// writeText emits one planned text element as a heading or paragraph.
func (w *Renderer) writeText(sb *strings.Builder, el layout.Element) {
	tag := "p"
	if el.Heading > 0 {
		tag = fmt.Sprintf("h%d", el.Heading)
	}

	var classes []string
	switch el.Align {
	case layout.AlignCenter:
		classes = append(classes, "center")
	case layout.AlignRight:
		classes = append(classes, "right")
	case layout.AlignJustify:
		classes = append(classes, "justify")
	}
	if el.IndentLeft > 0 && el.IndentRight > 0 {
		classes = append(classes, "quote")
	} else if el.IndentLeft > 0 {
		classes = append(classes, "list-item")
	}

	sb.WriteString("<" + tag)
	if len(classes) > 0 {
		sb.WriteString(` class="` + strings.Join(classes, " ") + `"`)
	}
	sb.WriteString(">")
	for _, run := range el.Runs {
		sb.WriteString(renderRun(run))
	}
	sb.WriteString("</" + tag + ">\n")
}

// renderRun emits one formatted span.
func renderRun(run layout.Run) string {
	// The blank signature space is newlines, not text.
	if strings.Trim(run.Text, "\n") == "" && run.Text != "" {
		return strings.Repeat("<br>", strings.Count(run.Text, "\n"))
	}

	out := html.EscapeString(run.Text)
	if run.Size != 0 && run.Size != 22 {
		out = fmt.Sprintf(`<span style="font-size: %gpt">%s</span>`, float64(run.Size)/2, out)
	}
	if run.Underline {
		out = "<u>" + out + "</u>"
	}
	if run.Italic {
		out = "<i>" + out + "</i>"
	}
	if run.Bold {
		out = "<b>" + out + "</b>"
	}
	return out
}

// writeImage emits one planned image element. Letterhead and logo slots
// embed by reference; the signature slot resolves to bytes first so the
// file stays self-contained even when the source was a remote URL.
func (w *Renderer) writeImage(ctx context.Context, sb *strings.Builder, el layout.Element) {
	img := el.Image
	align := "center"
	if el.Align == layout.AlignRight {
		align = "right"
	}

	src := img.Ref
	if img.Slot == layout.SlotSignature && !strings.HasPrefix(src, "data:") {
		data, err := w.resolver.Resolve(ctx, img.Ref)
		if err != nil {
			w.logger.Warn("signature image unavailable, leaving blank space",
				slog.Any("error", err))
			w.writeText(sb, layout.BlankSignatureSpace())
			return
		}
		mt := format.Detect(data).ContentType()
		src = "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	fmt.Fprintf(sb, `<p class="%s"><img src="%s" width="%d" height="%d"></p>`+"\n",
		align, html.EscapeString(src), img.Width, img.Height)
}

// withBOM encodes the markup as UTF-8 with a leading byte-order mark.
func withBOM(markup string) ([]byte, error) {
	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder())
	if _, err := enc.Write([]byte(markup)); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}
