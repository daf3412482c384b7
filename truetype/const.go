/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

// Errors returned when loading fonts and decoding glyphs. Returned errors carry context and
// should be matched with errors.Is.
var (
	ErrOutOfBounds               = errors.New("read out of bounds")
	ErrMalformedDirectory        = errors.New("malformed table directory")
	ErrMissingTable              = errors.New("required table missing")
	ErrGlyphIndexOutOfRange      = errors.New("glyph index out of range")
	ErrUnsupportedCompositeGlyph = errors.New("composite glyphs not supported")
	ErrMalformedGlyph            = errors.New("malformed glyph data")
)

var errTypeCheck = errors.New("type check error")

// Tables that must be present for glyph decoding.
var requiredTables = []string{"head", "maxp", "loca", "glyf"}
