// Package model defines the document data model: the ordered block
// sequence with its mutation operations, and the metadata (letterhead,
// recipient, signature, date) that accompanies a document at export time.
package model
