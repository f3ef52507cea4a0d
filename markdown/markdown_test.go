package markdown

import (
	"reflect"
	"testing"

	"github.com/suratkit/suratkit/model"
)

func TestBlocksBasicDocument(t *testing.T) {
	src := []byte(`# Judul

Paragraf pembuka yang
membentang dua baris.

## Rincian

- satu
- dua
- tiga

> Kutipan bijak.
`)

	seq, err := Blocks(src)
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}

	blocks := seq.Blocks()
	types := make([]model.BlockType, len(blocks))
	for i, b := range blocks {
		types[i] = b.Type
	}
	want := []model.BlockType{model.Heading, model.Paragraph, model.Heading, model.List, model.Quote}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("block types = %v, want %v", types, want)
	}

	if blocks[0].Content != "Judul" || blocks[0].Level != 1 {
		t.Errorf("first heading = %q level %d", blocks[0].Content, blocks[0].Level)
	}
	if blocks[1].Content != "Paragraf pembuka yang membentang dua baris." {
		t.Errorf("paragraph = %q", blocks[1].Content)
	}
	if blocks[2].Level != 2 {
		t.Errorf("second heading level = %d", blocks[2].Level)
	}
	if !reflect.DeepEqual(blocks[3].Items, []string{"satu", "dua", "tiga"}) {
		t.Errorf("list items = %v", blocks[3].Items)
	}
	if blocks[4].Content != "Kutipan bijak." {
		t.Errorf("quote = %q", blocks[4].Content)
	}
}

func TestBlocksDeepHeadingClamped(t *testing.T) {
	seq, err := Blocks([]byte("##### dalam\n"))
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}
	if got := seq.Blocks()[0].Level; got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestBlocksSequenceInvariants(t *testing.T) {
	seq, err := Blocks([]byte("a\n\nb\n\nc\n"))
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}
	for i, b := range seq.Blocks() {
		if b.Order != i {
			t.Errorf("block %d has order %d", i, b.Order)
		}
		if b.ID == "" {
			t.Error("block without ID")
		}
	}
}

func TestBlocksEmptySource(t *testing.T) {
	seq, err := Blocks(nil)
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}
	if seq.Len() != 0 {
		t.Errorf("Len() = %d, want 0", seq.Len())
	}
}

func TestBlocksCodeBlockDegradesToParagraph(t *testing.T) {
	seq, err := Blocks([]byte("    x := 1\n    y := 2\n"))
	if err != nil {
		t.Fatalf("Blocks() error = %v", err)
	}
	blocks := seq.Blocks()
	if len(blocks) != 1 || blocks[0].Type != model.Paragraph {
		t.Fatalf("blocks = %+v, want one paragraph", blocks)
	}
	if blocks[0].Content == "" {
		t.Error("code content dropped")
	}
}
