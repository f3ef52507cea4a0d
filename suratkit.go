// Package suratkit composes block-based business documents and exports
// them as word-processor files.
//
// Basic usage:
//
//	c := suratkit.Compose(model.DocumentMetadata{
//	    Title: "Surat Penawaran",
//	    Date:  time.Now(),
//	})
//	p := c.Blocks().Append(model.Paragraph)
//	c.Blocks().Update(p.ID, model.BlockPatch{Content: model.String("Dengan hormat,")})
//
//	artifact, err := c.DOCX(ctx)
//	if err != nil {
//	    // handle error
//	}
//	// hand (artifact.Data, artifact.Filename) to the save collaborator
//
// Editing and exporting may overlap: an export operates on a snapshot of
// the blocks and metadata taken when it starts, and never observes later
// edits.
package suratkit

import (
	"context"

	"github.com/suratkit/suratkit/docx"
	"github.com/suratkit/suratkit/htmldoc"
	"github.com/suratkit/suratkit/locale"
	"github.com/suratkit/suratkit/markdown"
	"github.com/suratkit/suratkit/model"
)

// Composer holds one document being authored: its metadata and its live
// block sequence.
type Composer struct {
	meta    model.DocumentMetadata
	seq     *model.Sequence
	options composeOptions
}

// Compose starts a composer for the given metadata with an empty block
// sequence.
func Compose(meta model.DocumentMetadata) *Composer {
	return &Composer{
		meta:    meta,
		seq:     model.NewSequence(),
		options: defaultOptions(),
	}
}

// ComposeMarkdown starts a composer whose block sequence is seeded from
// markdown source.
func ComposeMarkdown(meta model.DocumentMetadata, source []byte) (*Composer, error) {
	c := Compose(meta)
	seq, err := markdown.Blocks(source)
	if err != nil {
		return nil, err
	}
	c.seq = seq
	return c, nil
}

// Blocks returns the live block sequence for editing.
func (c *Composer) Blocks() *model.Sequence { return c.seq }

// SetBlocks replaces the block sequence.
func (c *Composer) SetBlocks(seq *model.Sequence) { c.seq = seq }

// SetMetadata replaces the document metadata.
func (c *Composer) SetMetadata(meta model.DocumentMetadata) { c.meta = meta }

// WithLocale replaces the label/date table used by exports.
func (c *Composer) WithLocale(t locale.Table) *Composer {
	c.options.table = t
	return c
}

// WithOptions applies export options.
func (c *Composer) WithOptions(opts ...ExportOption) *Composer {
	for _, opt := range opts {
		opt(&c.options)
	}
	return c
}

// Snapshot captures the point-in-time export input: a deep copy of the
// metadata and blocks, detached from later edits.
func (c *Composer) Snapshot() (model.DocumentMetadata, []model.Block) {
	return c.meta.Clone(), c.seq.Blocks()
}

// DOC exports the document in the legacy format. The returned artifact
// is complete and self-contained; handing it to the save collaborator is
// the caller's concern.
func (c *Composer) DOC(ctx context.Context) (*Artifact, error) {
	meta, blocks := c.Snapshot()
	opts := c.options.clone()

	r := htmldoc.NewRenderer(
		htmldoc.WithLocale(opts.table),
		htmldoc.WithLogger(opts.logger),
		htmldoc.WithResolver(opts.resolver()),
	)
	data, err := r.Render(ctx, meta, blocks)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename: r.Filename(meta),
		MIME:     htmldoc.MIMEType,
		Data:     data,
	}, nil
}

// DOCX exports the document in the modern format.
func (c *Composer) DOCX(ctx context.Context) (*Artifact, error) {
	meta, blocks := c.Snapshot()
	opts := c.options.clone()

	r := docx.NewRenderer(
		docx.WithLocale(opts.table),
		docx.WithLogger(opts.logger),
		docx.WithResolver(opts.resolver()),
	)
	data, err := r.Render(ctx, meta, blocks)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename: r.Filename(meta),
		MIME:     docx.MIMEType,
		Data:     data,
	}, nil
}

// Must is a helper that wraps a call returning (*Artifact, error) and
// panics if the error is non-nil. It is intended for scripts and tests.
func Must(a *Artifact, err error) *Artifact {
	if err != nil {
		panic(err)
	}
	return a
}
