/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"math/bits"
	"sort"
)

// testTable is a table to be placed in a synthetic font file.
type testTable struct {
	tag  string
	data []byte
}

// buildDirectory lays out the offset table, the table records and the table data of `tables`.
// Records are written in the order given; data is 4-byte aligned.
func buildDirectory(tables []testTable) []byte {
	n := len(tables)
	entrySelector := 0
	if n > 0 {
		entrySelector = bits.Len(uint(n)) - 1
	}
	searchRange := (1 << entrySelector) * 16

	var head byteWriter
	head.write(uint32(0x00010000), uint16(n), uint16(searchRange), uint16(entrySelector),
		uint16(n*16-searchRange))

	var body byteWriter
	offset := offsetTableSize + tableRecordSize*n
	for _, t := range tables {
		var tw byteWriter
		tw.write(t.data)
		head.write(makeTag(t.tag), tw.checksum(), offset32(offset+body.bufferedLen()), uint32(len(t.data)))

		body.write(t.data)
		body.pad()
	}

	head.write(body.bytes())
	return head.bytes()
}

// testFont describes a synthetic font with the tables needed for glyph decoding.
type testFont struct {
	glyphs   [][]byte // raw glyph data blocks, indexed by glyph ID.
	longLoca bool
	omit     string // table to leave out.
}

func (tf testFont) bytes() []byte {
	var glyf byteWriter
	offsets := []int{0}
	for _, g := range tf.glyphs {
		glyf.write(g)
		glyf.pad()
		offsets = append(offsets, glyf.bufferedLen())
	}

	var loca byteWriter
	for _, off := range offsets {
		if tf.longLoca {
			loca.write(offset32(off))
		} else {
			loca.write(offset16(off / 2))
		}
	}

	locFormat := int16(0)
	if tf.longLoca {
		locFormat = 1
	}

	tables := map[string][]byte{
		"head": testHead(locFormat),
		"maxp": testMaxp(len(tf.glyphs)),
		"loca": loca.bytes(),
		"glyf": glyf.bytes(),
	}

	var list []testTable
	for tag, data := range tables {
		if tag == tf.omit {
			continue
		}
		list = append(list, testTable{tag: tag, data: data})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].tag < list[j].tag })

	return buildDirectory(list)
}

func testHead(indexToLocFormat int16) []byte {
	var w byteWriter
	w.write(uint16(1), uint16(0), uint32(0x00010000)) // version, fontRevision.
	w.write(uint32(0), uint32(0x5F0F3CF5))            // checksumAdjustment, magicNumber.
	w.write(uint16(0), uint16(1000))                  // flags, unitsPerEm.
	w.write(make([]byte, 16))                         // created, modified.
	w.write(int16(0), int16(0), int16(100), int16(100))
	w.write(uint16(0), uint16(8), int16(2)) // macStyle, lowestRecPPEM, fontDirectionHint.
	w.write(indexToLocFormat, int16(0))
	return w.bytes()
}

func testMaxp(numGlyphs int) []byte {
	var w byteWriter
	w.write(uint32(0x00005000), uint16(numGlyphs))
	return w.bytes()
}

// encodeSimpleGlyph encodes `contours` as a simple glyph data block, choosing the most compact
// coordinate encoding per delta and packing repeated flags.
func encodeSimpleGlyph(bounds BoundingBox, contours ...Contour) []byte {
	var w byteWriter
	w.write(int16(len(contours)), bounds.XMin, bounds.YMin, bounds.XMax, bounds.YMax)

	end := -1
	var points []GlyphPoint
	for _, c := range contours {
		end += len(c)
		w.write(uint16(end))
		points = append(points, c...)
	}
	w.write(uint16(0)) // instructionLength.

	var xs, ys byteWriter
	var flags []simpleGlyphFlag
	var lastX, lastY int
	for _, p := range points {
		var flag simpleGlyphFlag
		if p.OnCurve {
			flag |= onCurvePoint
		}
		flag |= encodeDelta(&xs, int(p.X)-lastX, xShortVector, xIsSameOrPositiveVector)
		flag |= encodeDelta(&ys, int(p.Y)-lastY, yShortVector, yIsSameOrPositiveVector)
		flags = append(flags, flag)
		lastX, lastY = int(p.X), int(p.Y)
	}

	// flags - packed.
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] && j-i-1 < 255 {
			j++
		}
		if repeats := j - i - 1; repeats > 0 {
			w.write(uint8(flags[i]|repeatFlag), uint8(repeats))
		} else {
			w.write(uint8(flags[i]))
		}
		i = j
	}

	w.write(xs.bytes(), ys.bytes())
	return w.bytes()
}

func encodeDelta(w *byteWriter, d int, short, sameOrPositive simpleGlyphFlag) simpleGlyphFlag {
	switch {
	case d == 0:
		return sameOrPositive
	case d > 0 && d < 256:
		w.write(uint8(d))
		return short | sameOrPositive
	case d < 0 && d > -256:
		w.write(uint8(-d))
		return short
	default:
		w.write(int16(d))
		return 0
	}
}

func on(x, y int16) GlyphPoint  { return GlyphPoint{X: x, Y: y, OnCurve: true} }
func off(x, y int16) GlyphPoint { return GlyphPoint{X: x, Y: y} }
