package layout

import (
	"strconv"
	"strings"

	"github.com/suratkit/suratkit/locale"
	"github.com/suratkit/suratkit/model"
)

// Font sizes in half-points.
const (
	sizeBody      = 22
	sizeTitle     = 28
	sizeHeading1  = 28
	sizeHeading2  = 26
	sizeHeading3  = 24
	sizeCompany   = 32
	sizeAddress   = 20
	sizeContact   = 18
	sizeSeparator = 16
)

// Image placements in pixels.
const (
	letterheadWidth  = 600
	letterheadHeight = 150
	logoWidth        = 80
	logoHeight       = 80
	signatureWidth   = 120
	signatureHeight  = 60
)

// separatorLine closes a manual letterhead.
const separatorLine = "_______________________________________________________________________________"

// Plan walks a document snapshot into the ordered element sequence both
// renderers consume: letterhead, date line, recipient/subject header,
// title, body, signature. Blocks that render empty are skipped here, so
// the two output formats always agree on what was skipped.
func Plan(meta model.DocumentMetadata, blocks []model.Block, tbl locale.Table) []Element {
	var els []Element
	els = append(els, letterhead(meta.Letterhead, tbl)...)
	els = append(els, dateLine(meta, tbl))
	els = append(els, header(meta, tbl)...)
	els = append(els, title(meta))
	els = append(els, body(meta, blocks)...)
	els = append(els, signature(meta.Signature, tbl)...)
	return els
}

func letterhead(lh *model.Letterhead, tbl locale.Table) []Element {
	if lh == nil {
		return nil
	}

	var els []Element
	switch lh.Kind {
	case model.Uploaded:
		if lh.ImageURL == "" {
			return nil
		}
		el := image(lh.ImageURL, letterheadWidth, letterheadHeight, SlotLetterhead, AlignCenter)
		el.SpaceAfter = 400
		els = append(els, el)

	case model.Manual:
		if lh.LogoBase64 != "" {
			el := image(lh.LogoBase64, logoWidth, logoHeight, SlotLogo, AlignCenter)
			el.SpaceAfter = 200
			els = append(els, el)
		}

		// Company name is the one line that always renders, empty or not.
		name := text(Run{Text: lh.CompanyName, Bold: true, Size: sizeCompany}, AlignCenter)
		name.SpaceAfter = 100
		els = append(els, name)

		if lh.Address != "" {
			addr := text(Run{Text: lh.Address, Size: sizeAddress}, AlignCenter)
			addr.SpaceAfter = 50
			els = append(els, addr)
		}

		var contact []string
		if lh.Phone != "" {
			contact = append(contact, tbl.PhoneLabel+lh.Phone)
		}
		if lh.Email != "" {
			contact = append(contact, tbl.EmailLabel+lh.Email)
		}
		if lh.Website != "" {
			contact = append(contact, tbl.WebLabel+lh.Website)
		}
		if len(contact) > 0 {
			line := text(Run{Text: strings.Join(contact, tbl.ContactSeparator), Size: sizeContact}, AlignCenter)
			line.SpaceAfter = 300
			els = append(els, line)
		}

		sep := text(Run{Text: separatorLine, Size: sizeSeparator}, AlignCenter)
		sep.SpaceAfter = 400
		els = append(els, sep)
	}
	return els
}

func dateLine(meta model.DocumentMetadata, tbl locale.Table) Element {
	el := text(Run{Text: tbl.LongDate(meta.Date), Size: sizeBody}, AlignRight)
	el.SpaceAfter = 400
	return el
}

// header emits the template-dependent recipient/subject lines.
func header(meta model.DocumentMetadata, tbl locale.Table) []Element {
	var els []Element

	switch meta.Template.Type {
	case model.Letter:
		if meta.Recipient != "" {
			greet := text(Run{Text: tbl.Greeting, Size: sizeBody}, AlignLeft)
			greet.SpaceAfter = 100
			name := text(Run{Text: meta.Recipient, Bold: true, Size: sizeBody}, AlignLeft)
			name.SpaceAfter = 100
			loc := text(Run{Text: tbl.Location, Size: sizeBody}, AlignLeft)
			loc.SpaceAfter = 400
			els = append(els, greet, name, loc)
		}
		if meta.Subject != "" {
			subj := text(Run{Text: tbl.SubjectLabel + meta.Subject, Bold: true, Size: sizeBody}, AlignLeft)
			subj.SpaceAfter = 400
			els = append(els, subj)
		}

	case model.Memo:
		if meta.Recipient != "" {
			to := text(Run{Text: tbl.ToLabel + meta.Recipient, Bold: true, Size: sizeBody}, AlignLeft)
			to.SpaceAfter = 100
			from := text(Run{Text: tbl.FromLine, Bold: true, Size: sizeBody}, AlignLeft)
			from.SpaceAfter = 100
			date := text(Run{Text: tbl.DateLabel + tbl.ShortDate(meta.Date), Bold: true, Size: sizeBody}, AlignLeft)
			date.SpaceAfter = 100
			els = append(els, to, from, date)

			if meta.Subject != "" {
				subj := text(Run{Text: tbl.SubjectLabel + meta.Subject, Bold: true, Size: sizeBody}, AlignLeft)
				subj.SpaceAfter = 400
				els = append(els, subj)
			}
		}
	}
	return els
}

func title(meta model.DocumentMetadata) Element {
	el := text(Run{Text: meta.Title, Bold: true, Size: sizeTitle}, AlignCenter)
	el.Heading = 1
	el.SpaceAfter = 400
	return el
}

// body renders the block sequence, or falls back to splitting the plain
// Content text on blank lines when no blocks are supplied.
func body(meta model.DocumentMetadata, blocks []model.Block) []Element {
	if len(blocks) == 0 {
		return fallbackBody(meta.Content)
	}

	var els []Element
	for _, b := range blocks {
		switch b.Type {
		case model.Paragraph:
			if strings.TrimSpace(b.Content) == "" {
				continue
			}
			el := text(Run{Text: b.Content, Size: sizeBody}, AlignJustify)
			el.SpaceAfter = 200
			els = append(els, el)

		case model.Heading:
			if strings.TrimSpace(b.Content) == "" {
				continue
			}
			level, size := headingStyle(b.Level)
			el := text(Run{Text: b.Content, Bold: true, Size: size}, AlignLeft)
			el.Heading = level
			el.SpaceBefore = 300
			el.SpaceAfter = 200
			els = append(els, el)

		case model.List:
			els = append(els, listItems(b)...)

		case model.Quote:
			if strings.TrimSpace(b.Content) == "" {
				continue
			}
			el := text(Run{Text: `"` + b.Content + `"`, Italic: true, Size: sizeBody}, AlignCenter)
			el.SpaceAfter = 200
			el.IndentLeft = 400
			el.IndentRight = 400
			els = append(els, el)

		case model.Image:
			// Reserved block kind: not rendered, must not fail.
		}
	}
	return els
}

// headingStyle maps a block level to (style level, half-point size).
// Level 1 and 2 map directly; everything else renders as level 3.
func headingStyle(level int) (int, int) {
	switch level {
	case 1:
		return 1, sizeHeading1
	case 2:
		return 2, sizeHeading2
	default:
		return 3, sizeHeading3
	}
}

// listItems numbers the non-empty items of a list block. Numbering is
// 1-based from item position; stored indexes play no part.
func listItems(b model.Block) []Element {
	var els []Element
	for i, item := range b.Items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		el := text(Run{Text: strconv.Itoa(i+1) + ". " + item, Size: sizeBody}, AlignLeft)
		el.SpaceAfter = 100
		el.IndentLeft = 400
		els = append(els, el)
	}
	return els
}

func fallbackBody(content string) []Element {
	var els []Element
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		el := text(Run{Text: para, Size: sizeBody}, AlignJustify)
		el.SpaceAfter = 200
		els = append(els, el)
	}
	return els
}

func signature(sig *model.Signature, tbl locale.Table) []Element {
	if sig == nil || !sig.Present() {
		return nil
	}

	var els []Element

	closing := text(Run{Text: tbl.Closing, Size: sizeBody}, AlignRight)
	closing.SpaceBefore = 600
	closing.SpaceAfter = 200
	els = append(els, closing)

	if sig.ImageRef != "" {
		el := image(sig.ImageRef, signatureWidth, signatureHeight, SlotSignature, AlignRight)
		el.SpaceAfter = 200
		els = append(els, el)
	} else {
		els = append(els, BlankSignatureSpace())
	}

	if sig.Name != "" {
		name := text(Run{Text: sig.Name, Bold: true, Underline: true, Size: sizeBody}, AlignRight)
		name.SpaceAfter = 100
		els = append(els, name)
	}
	if sig.Position != "" {
		els = append(els, text(Run{Text: sig.Position, Size: sizeBody}, AlignRight))
	}
	return els
}

// BlankSignatureSpace returns the vertical gap left for a handwritten
// signature. Renderers substitute it when a signature image reference
// fails to resolve.
func BlankSignatureSpace() Element {
	el := text(Run{Text: "\n\n", Size: sizeBody}, AlignRight)
	el.SpaceAfter = 200
	return el
}
