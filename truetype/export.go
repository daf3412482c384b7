/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"os"
	"strings"
)

// Font wraps font for outside access. A Font is immutable after Parse and may be shared
// between goroutines decoding glyphs concurrently.
type Font struct {
	*font
}

// Parse parses the truetype font in `data` and returns a new Font. `data` must not be
// modified afterwards.
func Parse(data []byte) (*Font, error) {
	fnt, err := parseFont(data)
	if err != nil {
		return nil, err
	}

	return &Font{
		font: fnt,
	}, nil
}

// ParseFile parses the truetype font from file given by path.
func ParseFile(filePath string) (*Font, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// NumGlyphs returns the number of glyphs according to the maxp table.
func (f *Font) NumGlyphs() int {
	return int(f.maxp.numGlyphs)
}

// UnitsPerEm returns the number of design units per em square.
func (f *Font) UnitsPerEm() int {
	return int(f.head.unitsPerEm)
}

// OffsetTable returns the offset subtable of the table directory.
func (f *Font) OffsetTable() OffsetTable {
	return *f.ot
}

// Tables returns the table records in directory order.
func (f *Font) Tables() []TableRecord {
	list := make([]TableRecord, 0, len(f.trec.list))
	for _, tr := range f.trec.list {
		list = append(list, tr.export())
	}
	return list
}

// TableOffset returns the byte offset of table `tableName` within the font data. Trailing
// spaces in tags are insignificant, e.g. "cvt " and "cvt" are the same table.
func (f *Font) TableOffset(tableName string) (uint32, bool) {
	tr, has := f.trec.trMap[strings.TrimSpace(tableName)]
	return uint32(tr.offset), has
}

// DecodeGlyph decodes the outline of glyph `gid`. Composite glyphs fail with
// ErrUnsupportedCompositeGlyph. A failure only concerns the requested glyph.
func (f *Font) DecodeGlyph(gid GlyphIndex) (*Glyph, error) {
	return f.decodeGlyph(gid)
}
