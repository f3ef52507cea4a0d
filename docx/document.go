// Package docx renders a document snapshot into the modern format: an
// Office Open XML wordprocessing package (a compressed archive of XML
// parts plus embedded media).
package docx

import "encoding/xml"

// XML namespaces used in the produced package.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPic = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// documentXML is the root of word/document.xml.
type documentXML struct {
	XMLName  xml.Name `xml:"w:document"`
	XmlnsW   string   `xml:"xmlns:w,attr"`
	XmlnsR   string   `xml:"xmlns:r,attr"`
	XmlnsWP  string   `xml:"xmlns:wp,attr"`
	XmlnsA   string   `xml:"xmlns:a,attr"`
	XmlnsPic string   `xml:"xmlns:pic,attr"`
	Body     bodyXML  `xml:"w:body"`
}

// bodyXML holds the paragraph sequence followed by the section properties.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"w:p"`
	SectPr     sectPrXML      `xml:"w:sectPr"`
}

// sectPrXML carries the fixed page geometry.
type sectPrXML struct {
	PgMar pgMarXML `xml:"w:pgMar"`
}

// pgMarXML holds page margins in twips. 1440 twips is one inch.
type pgMarXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
}

// paragraphXML represents one <w:p>.
type paragraphXML struct {
	Props *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs  []runXML           `xml:"w:r"`
}

// paragraphPropsXML represents <w:pPr>.
type paragraphPropsXML struct {
	Style         *valXML     `xml:"w:pStyle,omitempty"`
	Spacing       *spacingXML `xml:"w:spacing,omitempty"`
	Indent        *indentXML  `xml:"w:ind,omitempty"`
	Justification *valXML     `xml:"w:jc,omitempty"`
}

// valXML is the ubiquitous single-attribute wordprocessing element.
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// spacingXML holds paragraph spacing in twips.
type spacingXML struct {
	Before int `xml:"w:before,attr,omitempty"`
	After  int `xml:"w:after,attr,omitempty"`
}

// indentXML holds paragraph indentation in twips.
type indentXML struct {
	Left  int `xml:"w:left,attr,omitempty"`
	Right int `xml:"w:right,attr,omitempty"`
}

// runXML represents one <w:r>. Exactly one of Break, Text, or Drawing is
// set per run; multi-line text becomes alternating text and break runs.
type runXML struct {
	Props   *runPropsXML `xml:"w:rPr,omitempty"`
	Break   *emptyXML    `xml:"w:br,omitempty"`
	Text    *textXML     `xml:"w:t,omitempty"`
	Drawing *drawingXML  `xml:"w:drawing,omitempty"`
}

// runPropsXML represents <w:rPr>.
type runPropsXML struct {
	Bold      *emptyXML `xml:"w:b,omitempty"`
	Italic    *emptyXML `xml:"w:i,omitempty"`
	Underline *valXML   `xml:"w:u,omitempty"`
	Size      *valXML   `xml:"w:sz,omitempty"`
	SizeCs    *valXML   `xml:"w:szCs,omitempty"`
}

// textXML represents <w:t>. Space preservation keeps leading and trailing
// whitespace through strict consumers.
type textXML struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type emptyXML struct{}

// relationshipsXML is the root of a .rels part.
type relationshipsXML struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr"`
	Rels    []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// typesXML is the root of [Content_Types].xml.
type typesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	Xmlns     string            `xml:"xmlns,attr"`
	Defaults  []defaultTypeXML  `xml:"Default"`
	Overrides []overrideTypeXML `xml:"Override"`
}

type defaultTypeXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideTypeXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}
