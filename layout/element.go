package layout

// ElementKind represents the kind of a planned element.
type ElementKind int

const (
	// ElementText is a paragraph of text runs.
	ElementText ElementKind = iota
	// ElementImage is an image placed from a resolvable reference.
	ElementImage
)

// Alignment represents horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ImageSlot identifies where an image element sits in the document, which
// fixes the failure policy when its reference cannot be resolved.
type ImageSlot int

const (
	// SlotLetterhead is the uploaded full-width letterhead image.
	// Resolution failure omits the element.
	SlotLetterhead ImageSlot = iota
	// SlotLogo is the manual-letterhead company logo.
	// Resolution failure omits the element.
	SlotLogo
	// SlotSignature is the signature image. Resolution failure falls back
	// to blank vertical space so the rest of the signature block stays.
	SlotSignature
)

// Run is a span of uniformly formatted text within a text element.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Size      int // half-points
}

// Image describes a placed image.
type Image struct {
	Ref    string // asset reference: data URI, base64, or URL
	Width  int    // pixels
	Height int    // pixels
	Slot   ImageSlot
}

// Element is one planned paragraph-level unit of output. Spacing and
// indents are in twentieths of a point, matching wordprocessing units.
type Element struct {
	Kind ElementKind

	// Text elements.
	Runs        []Run
	Heading     int // 0 for body text, 1-3 for heading styles
	Align       Alignment
	SpaceBefore int
	SpaceAfter  int
	IndentLeft  int
	IndentRight int

	// Image elements.
	Image *Image
}

// text builds a single-run text element.
func text(r Run, align Alignment) Element {
	return Element{Kind: ElementText, Runs: []Run{r}, Align: align}
}

// image builds an image element.
func image(ref string, w, h int, slot ImageSlot, align Alignment) Element {
	return Element{
		Kind:  ElementImage,
		Align: align,
		Image: &Image{Ref: ref, Width: w, Height: h, Slot: slot},
	}
}
