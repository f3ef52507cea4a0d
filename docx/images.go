package docx

import (
	"bytes"
	"fmt"
	"image"
	"strconv"

	// Decoders for the embedded-image formats a letterhead or signature
	// may arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/suratkit/suratkit/assets"
	"github.com/suratkit/suratkit/format"
)

// emuPerPixel converts CSS pixels (96 dpi) to English Metric Units.
const emuPerPixel = 9525

// mediaPart is one embedded image: a file under word/media plus the
// relationship that the body references it through.
type mediaPart struct {
	Name   string // filename under word/media/
	RelID  string
	Data   []byte
	Format format.Format
}

// mediaStore collects the images embedded in one package.
type mediaStore struct {
	parts []mediaPart
}

// add validates data as a decodable image and registers it as a media
// part. Returns a *assets.DecodeError when the payload is not an image.
func (m *mediaStore) add(data []byte) (mediaPart, error) {
	f := format.Detect(data)
	if f == format.Unknown {
		return mediaPart{}, &assets.DecodeError{Reason: "payload is not a recognized image format"}
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return mediaPart{}, &assets.DecodeError{Reason: "payload does not decode as " + f.String(), Err: err}
	}

	n := len(m.parts) + 1
	part := mediaPart{
		Name:   fmt.Sprintf("image%d%s", n, f.Extension()),
		RelID:  fmt.Sprintf("rId%d", imageRelBase+n),
		Data:   data,
		Format: f,
	}
	m.parts = append(m.parts, part)
	return part, nil
}

// imageRelBase keeps image relationship IDs clear of the fixed part
// relationships (styles).
const imageRelBase = 100

// drawingXML represents <w:drawing> holding one inline picture.
type drawingXML struct {
	Inline inlineXML `xml:"wp:inline"`
}

type inlineXML struct {
	DistT   int        `xml:"distT,attr"`
	DistB   int        `xml:"distB,attr"`
	DistL   int        `xml:"distL,attr"`
	DistR   int        `xml:"distR,attr"`
	Extent  extentXML  `xml:"wp:extent"`
	DocPr   docPrXML   `xml:"wp:docPr"`
	Graphic graphicXML `xml:"a:graphic"`
}

// extentXML holds the placed size in EMU.
type extentXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type docPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type graphicXML struct {
	Data graphicDataXML `xml:"a:graphicData"`
}

type graphicDataXML struct {
	URI string `xml:"uri,attr"`
	Pic picXML `xml:"pic:pic"`
}

type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"pic:nvPicPr"`
	BlipFill blipFillXML `xml:"pic:blipFill"`
	SpPr     spPrXML     `xml:"pic:spPr"`
}

type nvPicPrXML struct {
	CNvPr    docPrXML `xml:"pic:cNvPr"`
	CNvPicPr emptyXML `xml:"pic:cNvPicPr"`
}

type blipFillXML struct {
	Blip    blipXML  `xml:"a:blip"`
	Stretch emptyXML `xml:"a:stretch"`
}

type blipXML struct {
	Embed string `xml:"r:embed,attr"`
}

type spPrXML struct {
	Xfrm     xfrmXML     `xml:"a:xfrm"`
	PrstGeom prstGeomXML `xml:"a:prstGeom"`
}

type xfrmXML struct {
	Off offXML `xml:"a:off"`
	Ext extXML `xml:"a:ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type extXML struct {
	CX int64 `xml:"cx,attr"`
	CY int64 `xml:"cy,attr"`
}

type prstGeomXML struct {
	Prst  string   `xml:"prst,attr"`
	AvLst emptyXML `xml:"a:avLst"`
}

// drawing builds the inline drawing for a media part placed at the given
// pixel dimensions. id must be unique per drawing within the document.
func drawing(part mediaPart, id, widthPx, heightPx int) *drawingXML {
	cx := int64(widthPx) * emuPerPixel
	cy := int64(heightPx) * emuPerPixel
	name := "Image " + strconv.Itoa(id)

	return &drawingXML{
		Inline: inlineXML{
			Extent: extentXML{CX: cx, CY: cy},
			DocPr:  docPrXML{ID: id, Name: name},
			Graphic: graphicXML{
				Data: graphicDataXML{
					URI: nsPic,
					Pic: picXML{
						NvPicPr: nvPicPrXML{
							CNvPr: docPrXML{ID: id, Name: name},
						},
						BlipFill: blipFillXML{
							Blip: blipXML{Embed: part.RelID},
						},
						SpPr: spPrXML{
							Xfrm:     xfrmXML{Ext: extXML{CX: cx, CY: cy}},
							PrstGeom: prstGeomXML{Prst: "rect"},
						},
					},
				},
			},
		},
	}
}
