package model

import (
	"strings"
	"time"
)

// TemplateType selects the document template, which controls the
// recipient/subject header layout.
type TemplateType string

const (
	// Letter renders a formal letter header (greeting, recipient, location).
	Letter TemplateType = "letter"
	// Memo renders an internal memo header (to/from/date/subject).
	Memo TemplateType = "memo"
	// Other renders no recipient header.
	Other TemplateType = "other"
)

// Template describes the selected document template.
type Template struct {
	Type TemplateType
}

// LetterheadKind discriminates the two letterhead variants.
type LetterheadKind string

const (
	// Uploaded is a letterhead supplied as a single image reference.
	Uploaded LetterheadKind = "uploaded"
	// Manual is a letterhead assembled from structured company fields.
	Manual LetterheadKind = "manual"
)

// Letterhead is the header branding element. For Uploaded only ImageURL is
// meaningful. For Manual every field is optional; an absent field omits
// its line entirely, except CompanyName which is always rendered (empty
// when absent).
type Letterhead struct {
	Kind LetterheadKind

	// Uploaded variant.
	ImageURL string

	// Manual variant.
	LogoBase64  string
	CompanyName string
	Address     string
	Phone       string
	Email       string
	Website     string
}

// Signature is the closing block. ImageRef is either an embedded data
// reference (data URI) or a fetchable URL.
type Signature struct {
	Name     string
	Position string
	ImageRef string
}

// Present reports whether the signature section should render at all.
func (s Signature) Present() bool {
	return strings.TrimSpace(s.Name) != "" || strings.TrimSpace(s.Position) != ""
}

// DocumentMetadata carries the non-block fields of a document. It is
// supplied fresh per export call and consumed read-only by the renderers.
type DocumentMetadata struct {
	Title     string
	Date      time.Time
	Template  Template
	Recipient string
	Subject   string

	// Content is the legacy non-block body: plain text split on blank
	// lines into paragraphs. Used only when no blocks are supplied.
	Content string

	Letterhead *Letterhead
	Signature  *Signature
}

// Clone returns a deep copy of the metadata.
func (m DocumentMetadata) Clone() DocumentMetadata {
	c := m
	if m.Letterhead != nil {
		lh := *m.Letterhead
		c.Letterhead = &lh
	}
	if m.Signature != nil {
		sig := *m.Signature
		c.Signature = &sig
	}
	return c
}
