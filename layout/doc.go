// Package layout performs the shared semantic walk over a document
// snapshot: it turns (metadata, blocks) into an ordered sequence of typed
// elements. Both format backends consume the same element sequence, so
// section ordering and the empty-block skip rules live in exactly one
// place.
package layout
