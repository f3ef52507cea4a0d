package model

// BlockType identifies the kind of content a block holds.
type BlockType string

const (
	// Paragraph is a plain body-text block.
	Paragraph BlockType = "paragraph"
	// Heading is a section heading with a level of 1-3.
	Heading BlockType = "heading"
	// List is a numbered list of text items.
	List BlockType = "list"
	// Quote is an indented, quoted passage.
	Quote BlockType = "quote"
	// Image is a reserved block kind. The current authoring flow never
	// produces it; renderers treat it as a no-op.
	Image BlockType = "image"
)

// Block is one unit of document content. ID is opaque and stable; it is
// used for targeted updates and deletes, never for ordering. Order always
// mirrors the block's position in its Sequence.
type Block struct {
	ID       string
	Type     BlockType
	Content  string
	Level    int      // headings only, 1-3
	Items    []string // lists only
	ImageURL string   // image blocks only
	Order    int
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	c := b
	if b.Items != nil {
		c.Items = make([]string, len(b.Items))
		copy(c.Items, b.Items)
	}
	return c
}

// BlockPatch holds the fields an Update may change. Nil pointer fields
// (and a nil Items slice) leave the corresponding block field untouched.
type BlockPatch struct {
	Content  *string
	Level    *int
	Items    []string
	ImageURL *string
}

// String returns a pointer to s, for use in a BlockPatch.
func String(s string) *string { return &s }

// Int returns a pointer to n, for use in a BlockPatch.
func Int(n int) *int { return &n }
