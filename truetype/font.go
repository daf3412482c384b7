/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// font is a data model for truetype fonts with basic access methods.
// It is read-only once parsed.
type font struct {
	data []byte

	ot   *OffsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	loca *locaTable
	glyf tableRecord // glyph data is decoded on demand.
}

func (f font) numTables() int {
	return int(f.ot.NumTables)
}

func parseFont(data []byte) (*font, error) {
	f := &font{data: data}
	r := newByteReader(data)

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Parsed %d table records", f.numTables())
	logrus.Tracef("Table records:\n%s", f.trec)

	err = f.checkRequiredTables()
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.loca, err = f.parseLoca(r)
	if err != nil {
		return nil, err
	}

	f.glyf = f.trec.trMap["glyf"]
	logrus.Debugf("glyf at %d (%d bytes), loca format %d", f.glyf.offset, f.glyf.length, f.head.indexToLocFormat)

	return f, nil
}

// checkRequiredTables checks that the tables needed for glyph decoding are listed and lie
// within the font data.
func (f *font) checkRequiredTables() error {
	for _, name := range requiredTables {
		tr, has := f.trec.trMap[name]
		if !has {
			logrus.Debugf("%s table not present", name)
			return errors.Wrap(ErrMissingTable, name)
		}
		if tr.end() > int64(len(f.data)) {
			logrus.Debugf("%s table exceeds font data (%d > %d)", name, tr.end(), len(f.data))
			return errors.Wrapf(ErrMalformedDirectory, "%s table %d+%d exceeds font size %d",
				name, tr.offset, tr.length, len(f.data))
		}
	}
	return nil
}
