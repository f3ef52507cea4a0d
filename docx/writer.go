package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/suratkit/suratkit/assets"
	"github.com/suratkit/suratkit/layout"
	"github.com/suratkit/suratkit/locale"
	"github.com/suratkit/suratkit/model"
)

// MIMEType is the media type of the produced artifact.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extension is the filename extension of the produced artifact.
const Extension = ".docx"

// pageMarginTwips is the fixed page margin: one inch on all four sides.
const pageMarginTwips = 1440

// Renderer produces modern-format document packages.
type Renderer struct {
	resolver *assets.Resolver
	logger   *slog.Logger
	table    locale.Table
}

// Option configures the renderer.
type Option func(*Renderer)

// WithResolver sets the asset resolver used for embedded images.
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

// NewRenderer creates a modern renderer.
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

// Render walks the snapshot into a complete package. Every image is
// resolved to raw bytes before embedding; resolution happens up front and
// concurrently, while assembly stays in source order. A letterhead or
// logo image that fails to resolve is omitted with a logged warning; a
// failed signature image degrades to blank space. Anything else that goes
// wrong aborts the export.
func (w *Renderer) Render(ctx context.Context, meta model.DocumentMetadata, blocks []model.Block) ([]byte, error) {
	elements := layout.Plan(meta, blocks, w.table)

	var refs []string
	for _, el := range elements {
		if el.Kind == layout.ElementImage {
			refs = append(refs, el.Image.Ref)
		}
	}
	resolved := w.resolver.ResolveAll(ctx, refs)

	media := &mediaStore{}
	var paragraphs []paragraphXML
	drawingID := 0
	for _, el := range elements {
		switch el.Kind {
		case layout.ElementText:
			paragraphs = append(paragraphs, textParagraph(el))

		case layout.ElementImage:
			part, err := w.embed(media, resolved[el.Image.Ref])
			if err != nil {
				if p, ok := w.recoverImage(el, err); ok {
					paragraphs = append(paragraphs, p)
				}
				continue
			}
			drawingID++
			paragraphs = append(paragraphs, imageParagraph(part, el, drawingID))
		}
	}

	doc := documentXML{
		XmlnsW:   nsW,
		XmlnsR:   nsR,
		XmlnsWP:  nsWP,
		XmlnsA:   nsA,
		XmlnsPic: nsPic,
		Body: bodyXML{
			Paragraphs: paragraphs,
			SectPr: sectPrXML{
				PgMar: pgMarXML{
					Top:    pageMarginTwips,
					Right:  pageMarginTwips,
					Bottom: pageMarginTwips,
					Left:   pageMarginTwips,
				},
			},
		},
	}

	return pack(doc, media)
}

// embed resolves one prefetched image result into a media part.
func (w *Renderer) embed(media *mediaStore, res assets.Result) (mediaPart, error) {
	if res.Err != nil {
		return mediaPart{}, res.Err
	}
	return media.add(res.Data)
}

// recoverImage applies the per-slot failure policy. It returns the
// substitute paragraph, if any, and whether one should be emitted.
func (w *Renderer) recoverImage(el layout.Element, err error) (paragraphXML, bool) {
	switch el.Image.Slot {
	case layout.SlotSignature:
		w.logger.Warn("signature image unavailable, leaving blank space",
			slog.Any("error", err))
		return textParagraph(layout.BlankSignatureSpace()), true
	default:
		w.logger.Warn("letterhead image unavailable, omitting",
			slog.Any("error", err))
		return paragraphXML{}, false
	}
}

// textParagraph converts a planned text element.
func textParagraph(el layout.Element) paragraphXML {
	p := paragraphXML{Props: paragraphProps(el)}
	for _, run := range el.Runs {
		p.Runs = append(p.Runs, textRuns(run)...)
	}
	return p
}

// imageParagraph wraps an embedded image in its own paragraph.
func imageParagraph(part mediaPart, el layout.Element, drawingID int) paragraphXML {
	return paragraphXML{
		Props: paragraphProps(el),
		Runs: []runXML{
			{Drawing: drawing(part, drawingID, el.Image.Width, el.Image.Height)},
		},
	}
}

func paragraphProps(el layout.Element) *paragraphPropsXML {
	props := &paragraphPropsXML{}

	if style, ok := headingStyleIDs[el.Heading]; ok {
		props.Style = &valXML{Val: style}
	}
	if el.SpaceBefore > 0 || el.SpaceAfter > 0 {
		props.Spacing = &spacingXML{Before: el.SpaceBefore, After: el.SpaceAfter}
	}
	if el.IndentLeft > 0 || el.IndentRight > 0 {
		props.Indent = &indentXML{Left: el.IndentLeft, Right: el.IndentRight}
	}
	switch el.Align {
	case layout.AlignCenter:
		props.Justification = &valXML{Val: "center"}
	case layout.AlignRight:
		props.Justification = &valXML{Val: "right"}
	case layout.AlignJustify:
		props.Justification = &valXML{Val: "both"}
	}

	if props.Style == nil && props.Spacing == nil && props.Indent == nil && props.Justification == nil {
		return nil
	}
	return props
}

// textRuns converts one planned run into wordprocessing runs. Newlines
// become explicit break runs so blank signature space survives the
// format's whitespace collapsing.
func textRuns(run layout.Run) []runXML {
	props := runProps(run)

	lines := strings.Split(run.Text, "\n")
	out := make([]runXML, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			out = append(out, runXML{Props: props, Break: &emptyXML{}})
		}
		if line == "" {
			continue
		}
		t := &textXML{Value: line}
		if line != strings.TrimSpace(line) {
			t.Space = "preserve"
		}
		out = append(out, runXML{Props: props, Text: t})
	}

	// A run that is entirely empty text still renders as an empty
	// paragraph line (the manual letterhead company name).
	if len(out) == 0 {
		out = append(out, runXML{Props: props, Text: &textXML{}})
	}
	return out
}

func runProps(run layout.Run) *runPropsXML {
	props := &runPropsXML{}
	if run.Bold {
		props.Bold = &emptyXML{}
	}
	if run.Italic {
		props.Italic = &emptyXML{}
	}
	if run.Underline {
		props.Underline = &valXML{Val: "single"}
	}
	if run.Size > 0 {
		sz := strconv.Itoa(run.Size)
		props.Size = &valXML{Val: sz}
		props.SizeCs = &valXML{Val: sz}
	}
	if *props == (runPropsXML{}) {
		return nil
	}
	return props
}

// pack assembles the package parts into the compressed archive.
func pack(doc documentXML, media *mediaStore) ([]byte, error) {
	docData, err := marshalPart(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling document part: %w", err)
	}

	contentTypes, err := marshalPart(contentTypesPart(media))
	if err != nil {
		return nil, fmt.Errorf("marshaling content types: %w", err)
	}

	pkgRels, err := marshalPart(relationshipsXML{
		Xmlns: nsRelationships,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling package relationships: %w", err)
	}

	docRels, err := marshalPart(documentRelsPart(media))
	if err != nil {
		return nil, fmt.Errorf("marshaling document relationships: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestSpeed)
	})

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", pkgRels},
		{"word/document.xml", docData},
		{"word/_rels/document.xml.rels", docRels},
		{"word/styles.xml", []byte(stylesXMLContent)},
	}
	for _, part := range media.parts {
		parts = append(parts, struct {
			name string
			data []byte
		}{"word/media/" + part.Name, part.Data})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating package part %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return nil, fmt.Errorf("writing package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// contentTypesPart declares the fixed parts plus a default for every
// embedded image extension in use.
func contentTypesPart(media *mediaStore) typesXML {
	ct := typesXML{
		Xmlns: nsContentTypes,
		Defaults: []defaultTypeXML{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []overrideTypeXML{
			{PartName: "/word/document.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
			{PartName: "/word/styles.xml", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		},
	}

	seen := make(map[string]bool)
	for _, part := range media.parts {
		ext := strings.TrimPrefix(part.Format.Extension(), ".")
		if seen[ext] {
			continue
		}
		seen[ext] = true
		ct.Defaults = append(ct.Defaults, defaultTypeXML{
			Extension:   ext,
			ContentType: part.Format.ContentType(),
		})
	}
	return ct
}

func documentRelsPart(media *mediaStore) relationshipsXML {
	rels := relationshipsXML{
		Xmlns: nsRelationships,
		Rels: []relationshipXML{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
		},
	}
	for _, part := range media.parts {
		rels.Rels = append(rels.Rels, relationshipXML{
			ID:     part.RelID,
			Type:   relTypeImage,
			Target: "media/" + part.Name,
		})
	}
	return rels
}

// marshalPart serializes a part with the XML declaration OOXML consumers
// expect.
func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+64)
	out = append(out, []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+"\n")...)
	out = append(out, data...)
	return out, nil
}
