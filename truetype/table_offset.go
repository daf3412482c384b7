/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// offsetTableSize is the size of the offset subtable at the start of the font file.
const offsetTableSize = 12

// OffsetTable is the offset subtable that starts the table directory.
type OffsetTable struct {
	SfntVersion   uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*OffsetTable, error) {
	ot := &OffsetTable{}

	err := r.read(&ot.SfntVersion, &ot.NumTables, &ot.SearchRange)
	if err != nil {
		logrus.Debugf("Offset table truncated: %v", err)
		return nil, errors.Wrap(ErrMalformedDirectory, err.Error())
	}

	err = r.read(&ot.EntrySelector, &ot.RangeShift)
	if err != nil {
		logrus.Debugf("Offset table truncated: %v", err)
		return nil, errors.Wrap(ErrMalformedDirectory, err.Error())
	}

	return ot, nil
}
