// Package render turns page trees into HTML.
//
// The renderer is used by the app when serving installed auth pages. It
// produces deterministic output (attributes are sorted) so rendered pages
// can be asserted on byte-for-byte in tests.
package render
