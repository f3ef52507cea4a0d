// Package assets resolves image references into raw bytes suitable for
// embedding in a rendered document. A reference is either self-describing
// embedded data (a data URI or bare base64) or a fetchable HTTP(S) URL.
//
// The resolver reports failures as *FetchError or *DecodeError; it never
// applies fallback behavior itself. Callers decide per image whether to
// omit, substitute, or abort.
package assets
