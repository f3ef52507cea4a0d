package suratkit

import "io"

// Artifact is a rendered document ready for the platform's save
// mechanism: the bytes, the media type, and the suggested filename.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// Bytes returns the document bytes.
func (a *Artifact) Bytes() []byte { return a.Data }

// WriteTo writes the document bytes to w.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.Data)
	return int64(n), err
}
