// Package format provides image format detection for embedded document
// assets.
package format

import "strings"

// Format represents a supported embedded-image format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// WEBP indicates a WebP image.
	WEBP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case WEBP:
		return "WEBP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpeg"
	case GIF:
		return ".gif"
	case WEBP:
		return ".webp"
	default:
		return ""
	}
}

// ContentType returns the MIME type for the format, as used in an OOXML
// package's content-types part.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case WEBP:
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// Detect determines the image format from magic bytes. This is more
// reliable than trusting a declared media type. Returns Unknown if the
// data does not start with a recognized signature.
func Detect(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PNG magic: \x89PNG
	if data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' {
		return PNG
	}

	// JPEG magic: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	// GIF magic: GIF8
	if data[0] == 'G' && data[1] == 'I' && data[2] == 'F' && data[3] == '8' {
		return GIF
	}

	// WebP: RIFF container with a WEBP chunk type at offset 8.
	if len(data) >= 12 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return WEBP
	}

	return Unknown
}

// FromMediaType maps a MIME media type (as found in a data URI) to a
// Format. Parameters after a semicolon are ignored.
func FromMediaType(mediaType string) Format {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch mt {
	case "image/png":
		return PNG
	case "image/jpeg", "image/jpg":
		return JPEG
	case "image/gif":
		return GIF
	case "image/webp":
		return WEBP
	default:
		return Unknown
	}
}
