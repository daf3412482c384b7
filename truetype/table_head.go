/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// headTableSize is the size of the head table up to and including glyphDataFormat.
const headTableSize = 54

// Font header. Only the fields needed to locate and scale glyph data are kept.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion     uint16
	minorVersion     uint16
	fontRevision     fixed
	magicNumber      uint32
	unitsPerEm       uint16
	xMin             int16
	yMin             int16
	xMax             int16
	yMax             int16
	indexToLocFormat int16
}

// parse the font's *head* table from `r` in the context of `f`.
func (f *font) parseHead(r *byteReader) (*headTable, error) {
	tr, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, errors.Wrap(ErrMissingTable, "head")
	}
	if tr.length < headTableSize {
		logrus.Debugf("head table too short (%d)", tr.length)
		return nil, errors.Wrapf(ErrMalformedDirectory, "head length %d", tr.length)
	}

	t := &headTable{}
	err = r.read(&t.majorVersion, &t.minorVersion, &t.fontRevision)
	if err != nil {
		return nil, err
	}

	// checksumAdjustment is not validated.
	err = r.Skip(4)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.magicNumber)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != 0x5F0F3CF5 {
		logrus.Debugf("head magic number mismatch (0x%08X)", t.magicNumber)
		return nil, errors.Wrap(ErrMalformedDirectory, "head magic number mismatch")
	}

	// flags.
	err = r.Skip(2)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.unitsPerEm)
	if err != nil {
		return nil, err
	}

	// created and modified timestamps.
	err = r.Skip(16)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.xMin, &t.yMin, &t.xMax, &t.yMax)
	if err != nil {
		return nil, err
	}

	// macStyle, lowestRecPPEM, fontDirectionHint.
	err = r.Skip(6)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.indexToLocFormat)
	if err != nil {
		return nil, err
	}
	if t.indexToLocFormat != 0 && t.indexToLocFormat != 1 {
		logrus.Debugf("Invalid index to loca value: %d", t.indexToLocFormat)
		return nil, errors.Wrapf(ErrMalformedDirectory, "indexToLocFormat %d", t.indexToLocFormat)
	}

	return t, nil
}
