/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// locaTable represents the Index to Location (loca) table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
type locaTable struct {
	// The extra entry at the end helps calculating the length of the last glyph data element.
	offsetsShort []offset16 // short format. (numGlyphs+1 entries).
	offsetsLong  []offset32 // long format. (numGlyphs+1 entries).
}

// GetGlyphDataOffset returns offset for glyph index `gid`. The offset is relative to
// the beginning of the glyf table.
func (f *font) GetGlyphDataOffset(gid GlyphIndex) (offset int64, len int64, err error) {
	if int(gid) >= int(f.maxp.numGlyphs) {
		logrus.Debugf("Glyph index %d out of range (%d glyphs)", gid, f.maxp.numGlyphs)
		return 0, 0, errors.Wrapf(ErrGlyphIndexOutOfRange, "glyph %d of %d", gid, f.maxp.numGlyphs)
	}

	var offset1, offset2 int64
	short := f.head.indexToLocFormat == 0
	if short {
		offset1 = 2 * int64(f.loca.offsetsShort[gid])
		offset2 = 2 * int64(f.loca.offsetsShort[gid+1])
	} else {
		offset1 = int64(f.loca.offsetsLong[gid])
		offset2 = int64(f.loca.offsetsLong[gid+1])
	}

	if offset2 < offset1 {
		logrus.Debugf("Invalid loca range for glyph %d: %d..%d", gid, offset1, offset2)
		return 0, 0, errors.Wrapf(ErrMalformedGlyph, "glyph %d: loca offsets decrease (%d > %d)", gid, offset1, offset2)
	}
	return offset1, offset2 - offset1, nil
}

func (f *font) parseLoca(r *byteReader) (*locaTable, error) {
	tr, has, err := f.seekToTable(r, "loca")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("loca table not present")
		return nil, errors.Wrap(ErrMissingTable, "loca")
	}

	loca := &locaTable{}

	numEntries := int(f.maxp.numGlyphs) + 1
	isShort := f.head.indexToLocFormat == 0

	entrySize := 4
	if isShort {
		entrySize = 2
	}
	if int64(tr.length) < int64(numEntries*entrySize) {
		logrus.Debugf("loca too short: %d < %d", tr.length, numEntries*entrySize)
		return nil, errors.Wrapf(ErrMalformedDirectory, "loca length %d for %d entries", tr.length, numEntries)
	}

	if isShort {
		err = r.readSlice(&loca.offsetsShort, numEntries)
	} else {
		err = r.readSlice(&loca.offsetsLong, numEntries)
	}
	if err != nil {
		return nil, err
	}

	return loca, nil
}
