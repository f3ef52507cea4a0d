package htmldoc

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/suratkit/suratkit/model"
)

var testDate = time.Date(2024, time.August, 17, 0, 0, 0, 0, time.UTC)

var pngStub = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

// render strips the BOM and parses the markup, failing the test on any error.
func render(t *testing.T, meta model.DocumentMetadata, blocks ...model.Block) (*html.Node, string) {
	t.Helper()
	data, err := NewRenderer().Render(context.Background(), meta, blocks)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("output is not BOM-prefixed")
	}
	markup := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}
	return node, markup
}

// collect gathers the rendered text of every element with the given tag.
func collect(n *html.Node, tag string) []string {
	var out []string
	var walk func(*html.Node)
	var textOf func(*html.Node) string
	textOf = func(n *html.Node) string {
		if n.Type == html.TextNode {
			return n.Data
		}
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			sb.WriteString(textOf(c))
		}
		return sb.String()
	}
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, textOf(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func TestRenderBlockScenario(t *testing.T) {
	meta := model.DocumentMetadata{Title: "Dokumen", Date: testDate}
	blocks := []model.Block{
		{Type: model.Paragraph, Content: "Hello"},
		{Type: model.Heading, Content: "Title", Level: 1},
		{Type: model.List, Items: []string{"a", ""}},
		{Type: model.Quote, Content: "wise words"},
	}

	node, markup := render(t, meta, blocks...)

	paras := collect(node, "p")
	var hello, listItems, quoted int
	for _, p := range paras {
		switch {
		case p == "Hello":
			hello++
		case strings.HasPrefix(p, "1. ") || strings.HasPrefix(p, "2. "):
			listItems++
		case p == `"wise words"`:
			quoted++
		}
	}
	if hello != 1 {
		t.Errorf("got %d 'Hello' paragraphs, want 1", hello)
	}
	if listItems != 1 || !strings.Contains(markup, "1. a") {
		t.Errorf("got %d list items, want exactly '1. a'", listItems)
	}
	if quoted != 1 {
		t.Errorf("got %d quoted paragraphs, want 1", quoted)
	}

	h1s := collect(node, "h1")
	found := false
	for _, h := range h1s {
		if h == "Title" {
			found = true
		}
	}
	if !found {
		t.Errorf("level-1 heading 'Title' missing, h1s = %v", h1s)
	}
}

func TestRenderFallbackContent(t *testing.T) {
	meta := model.DocumentMetadata{
		Title:   "Dokumen",
		Date:    testDate,
		Content: "Para one\n\nPara two",
	}

	node, _ := render(t, meta)

	var got []string
	for _, p := range collect(node, "p") {
		if p == "Para one" || p == "Para two" {
			got = append(got, p)
		}
	}
	if len(got) != 2 || got[0] != "Para one" || got[1] != "Para two" {
		t.Errorf("fallback paragraphs = %v", got)
	}
}

func TestRenderSectionOrdering(t *testing.T) {
	meta := model.DocumentMetadata{
		Title:     "Laporan",
		Date:      testDate,
		Signature: &model.Signature{Name: "Budi"},
	}
	blocks := []model.Block{{Type: model.Paragraph, Content: "Isi."}}

	_, markup := render(t, meta, blocks...)

	title := strings.Index(markup, "<h1")
	bodyAt := strings.Index(markup, "Isi.")
	closing := strings.Index(markup, "Hormat kami,")
	if title < 0 || bodyAt < 0 || closing < 0 {
		t.Fatal("a section is missing from the output")
	}
	if !(title < bodyAt && bodyAt < closing) {
		t.Errorf("sections out of order: title=%d body=%d signature=%d", title, bodyAt, closing)
	}
}

func TestRenderManualLetterheadCompanyNameOnly(t *testing.T) {
	meta := model.DocumentMetadata{
		Title:      "Dokumen",
		Date:       testDate,
		Letterhead: &model.Letterhead{Kind: model.Manual, CompanyName: "PT Sejahtera"},
	}

	_, markup := render(t, meta)

	if !strings.Contains(markup, "PT Sejahtera") {
		t.Error("company name missing")
	}
	if strings.Contains(markup, "Tel: ") || strings.Contains(markup, "Email: ") || strings.Contains(markup, "Web: ") {
		t.Error("contact line rendered with no contact fields")
	}
}

func TestRenderUploadedLetterheadByReference(t *testing.T) {
	meta := model.DocumentMetadata{
		Title:      "Dokumen",
		Date:       testDate,
		Letterhead: &model.Letterhead{Kind: model.Uploaded, ImageURL: "https://example.com/lh.png"},
	}

	_, markup := render(t, meta)

	// Embedded by reference, never fetched.
	if !strings.Contains(markup, `src="https://example.com/lh.png"`) {
		t.Error("uploaded letterhead not embedded by reference")
	}
}

func TestRenderSignatureImageInlined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngStub)
	}))
	defer srv.Close()

	meta := model.DocumentMetadata{
		Title:     "Dokumen",
		Date:      testDate,
		Signature: &model.Signature{Name: "Budi", ImageRef: srv.URL + "/sig.png"},
	}

	_, markup := render(t, meta)

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngStub)
	if !strings.Contains(markup, want) {
		t.Error("signature image not inlined as a data URI")
	}
}

func TestRenderSignatureFetchFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	meta := model.DocumentMetadata{
		Title:     "Dokumen",
		Date:      testDate,
		Signature: &model.Signature{Name: "Budi", Position: "Direktur", ImageRef: srv.URL + "/gone.png"},
	}

	_, markup := render(t, meta)

	if strings.Contains(markup, "<img") {
		t.Error("image tag rendered despite fetch failure")
	}
	if !strings.Contains(markup, "<br><br>") {
		t.Error("blank signature space missing")
	}
	// The rest of the signature block survives.
	if !strings.Contains(markup, "Budi") || !strings.Contains(markup, "Direktur") {
		t.Error("signature lines lost after image failure")
	}
}

func TestRenderSignaturePositionOnly(t *testing.T) {
	meta := model.DocumentMetadata{
		Title:     "Dokumen",
		Date:      testDate,
		Signature: &model.Signature{Position: "Direktur"},
	}

	_, markup := render(t, meta)

	if !strings.Contains(markup, "Hormat kami,") {
		t.Error("closing phrase missing")
	}
	if !strings.Contains(markup, "<br><br>") {
		t.Error("blank signature space missing")
	}
	if !strings.Contains(markup, "Direktur") {
		t.Error("position line missing")
	}
	if strings.Contains(markup, "<u>") {
		t.Error("name markup rendered without a name")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	meta := model.DocumentMetadata{Title: "a < b", Date: testDate}
	blocks := []model.Block{{Type: model.Paragraph, Content: `<script>alert("x")</script>`}}

	_, markup := render(t, meta, blocks...)

	if strings.Contains(markup, "<script>") {
		t.Error("block content not escaped")
	}
}

func TestFilename(t *testing.T) {
	w := NewRenderer()
	if got := w.Filename(model.DocumentMetadata{Title: "Surat"}); got != "Surat.doc" {
		t.Errorf("Filename = %q", got)
	}
	if got := w.Filename(model.DocumentMetadata{}); got != "dokumen.doc" {
		t.Errorf("Filename fallback = %q", got)
	}
}

func TestRenderDateLine(t *testing.T) {
	meta := model.DocumentMetadata{Title: "Dokumen", Date: testDate}
	_, markup := render(t, meta)
	if !strings.Contains(markup, "Sabtu, 17 Agustus 2024") {
		t.Error("long-form localized date missing")
	}
}
