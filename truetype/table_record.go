/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// tableRecordSize is the size of a single table record in the table directory.
const tableRecordSize = 16

// tableRecord represents table records, including name (tag) and file offset, size
// and checksum for integrity checking.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

// end returns the offset of the first byte after the table.
func (tr tableRecord) end() int64 {
	return int64(tr.offset) + int64(tr.length)
}

// TableRecord describes one table listed in the table directory.
type TableRecord struct {
	Tag      string
	Checksum uint32
	Offset   uint32
	Length   uint32
}

func (tr tableRecord) export() TableRecord {
	return TableRecord{
		Tag:      tr.tableTag.String(),
		Checksum: tr.checksum,
		Offset:   uint32(tr.offset),
		Length:   tr.length,
	}
}

// tableRecords represents a set of table records in a truetype font file.
// Includes a map by table name for quick lookup of records.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	trs := &tableRecords{}

	numTables := int(f.ot.NumTables)
	need := offsetTableSize + tableRecordSize*numTables
	if need > len(r.buf) {
		logrus.Debugf("Table directory exceeds font data (%d tables, %d > %d)", numTables, need, len(r.buf))
		return nil, errors.Wrapf(ErrMalformedDirectory, "%d table records need %d bytes, have %d",
			numTables, need, len(r.buf))
	}

	trs.trMap = make(map[string]tableRecord, numTables)

	for i := 0; i < numTables; i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedDirectory, err.Error())
		}
		logrus.Tracef("Table record %d: %s offset=%d length=%d", i+1, rec.tableTag, rec.offset, rec.length)
		trs.list = append(trs.list, rec)
		// Duplicate tags: the last record wins.
		trs.trMap[rec.tableTag.String()] = rec
	}

	return trs, nil
}

// seekToTable seeks to position font table `tableName` in `r` if it has the table.
// The table record is returned back when successful, otherwise is meaningless.
// The bool flag indicates that the table exists and should be at that position if there
// was no error.
func (f *font) seekToTable(r *byteReader, tableName string) (tr tableRecord, has bool, err error) {
	tr, has = f.trec.trMap[tableName]
	if !has {
		return tr, false, nil
	}

	err = r.Seek(int(tr.offset))
	if err != nil {
		return tr, false, err
	}

	return tr, true, nil
}

func (trs *tableRecords) String() string {
	var buf bytes.Buffer
	for i, tr := range trs.list {
		buf.WriteString(fmt.Sprintf("Table %d: Tag: %-4s Checksum: %d Offset: %d Length: %d\n",
			i+1, tr.tableTag, tr.checksum, tr.offset, tr.length))
	}
	return buf.String()
}
