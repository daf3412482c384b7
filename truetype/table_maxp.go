/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxpTable represents the Maximum Profile (maxp) table.
// Only the version 0.5 fields are read: the glyph count sits at byte offset 4 for every version.
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	tr, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("maxp table not present")
		return nil, errors.Wrap(ErrMissingTable, "maxp")
	}
	if tr.length < 6 {
		logrus.Debugf("maxp table too short (%d)", tr.length)
		return nil, errors.Wrapf(ErrMalformedDirectory, "maxp length %d", tr.length)
	}

	t := &maxpTable{}
	err = r.read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("maxp version %.4g, number of glyphs: %d", t.version.Float64(), t.numGlyphs)

	return t, nil
}
