/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// The 'glyf' table is comprised of a list of glyph data blocks, each of which provides
// the description for a single glyph. The 'glyf' table does not include any overall
// table header or records providing offsets to glyph data blocks. Rather, the 'loca' table
// provides an array of offsets, indexed by glyph IDs, which provide the location of each
// glyph data block within the 'glyf' table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
//
// Glyph data blocks are decoded on demand; only the table record is kept at load time.

// GlyphPoint is a decoded outline point in font design units.
type GlyphPoint struct {
	X, Y    int16
	OnCurve bool
}

// Contour is a closed sequence of points. The point after the last one is the first one.
type Contour []GlyphPoint

// BoundingBox is the glyph bounding box as stored in the glyph header.
type BoundingBox struct {
	XMin, YMin, XMax, YMax int16
}

// Glyph is a decoded simple glyph. It shares no memory with the font it was decoded from.
type Glyph struct {
	Index  GlyphIndex
	Bounds BoundingBox

	// EndPoints holds the index of the last point of each contour.
	EndPoints []uint16
	Contours  []Contour
}

// NumPoints returns the total number of points over all contours of `g`.
func (g *Glyph) NumPoints() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}

// decodeGlyph locates glyph `gid` through loca and decodes its simple glyph description.
func (f *font) decodeGlyph(gid GlyphIndex) (*Glyph, error) {
	gdOffset, gdLen, err := f.GetGlyphDataOffset(gid)
	if err != nil {
		return nil, err
	}

	tr := f.glyf
	if gdOffset+gdLen > int64(tr.length) {
		logrus.Debugf("Range check error (glyf): glyph %d at %d+%d exceeds %d", gid, gdOffset, gdLen, tr.length)
		return nil, errors.Wrapf(ErrMalformedGlyph, "glyph %d: data %d+%d exceeds glyf length %d",
			gid, gdOffset, gdLen, tr.length)
	}

	g := &Glyph{Index: gid}
	if gdLen == 0 {
		// No outline, e.g. space.
		return g, nil
	}

	start := int64(tr.offset) + gdOffset
	r := newByteReader(f.data[start : start+gdLen])

	var gh glyfGlyphHeader
	err = gh.read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "glyph %d header", gid)
	}
	logrus.Tracef("gh: %+v", gh)

	if gh.numberOfContours < 0 {
		logrus.Debugf("Glyph %d is composite", gid)
		return nil, errors.Wrapf(ErrUnsupportedCompositeGlyph, "glyph %d", gid)
	}
	g.Bounds = BoundingBox{XMin: gh.xMin, YMin: gh.yMin, XMax: gh.xMax, YMax: gh.yMax}

	d, err := parseSimpleGlyphDescription(r, int(gh.numberOfContours))
	if err != nil {
		return nil, errors.Wrapf(err, "glyph %d", gid)
	}
	if d == nil {
		return g, nil
	}

	g.EndPoints = d.endPtsOfContours
	g.Contours = d.contours()
	return g, nil
}

// glyfGlyphHeader represents the glyph header in the glyf table (one for each glyph).
type glyfGlyphHeader struct {
	numberOfContours int16
	xMin             int16
	yMin             int16
	xMax             int16
	yMax             int16
}

func (h *glyfGlyphHeader) read(r *byteReader) error {
	return r.read(&h.numberOfContours, &h.xMin, &h.yMin, &h.xMax, &h.yMax)
}

// simpleGlyphFlag represents a flag data representation of a point in a simple glyph.
type simpleGlyphFlag uint8

const (
	onCurvePoint simpleGlyphFlag = (1 << iota)
	xShortVector
	yShortVector
	repeatFlag
	xIsSameOrPositiveVector
	yIsSameOrPositiveVector
	overlapSimple
	reserved
)

func (f simpleGlyphFlag) String() string {
	var flags []string
	if f&onCurvePoint != 0 {
		flags = append(flags, "onCurvePoint")
	}
	if f&xShortVector != 0 {
		flags = append(flags, "xShortVector")
	}
	if f&yShortVector != 0 {
		flags = append(flags, "yShortVector")
	}
	if f&repeatFlag != 0 {
		flags = append(flags, "repeatFlag")
	}
	if f&xIsSameOrPositiveVector != 0 {
		flags = append(flags, "xIsSameOrPositiveVector")
	}
	if f&yIsSameOrPositiveVector != 0 {
		flags = append(flags, "yIsSameOrPositiveVector")
	}
	if f&overlapSimple != 0 {
		flags = append(flags, "overlapSimple")
	}
	if f&reserved != 0 {
		flags = append(flags, "reserved")
	}
	return strings.Join(flags, "|")
}

// simpleGlyphDescription represents simple glyph descriptions (non composite glyphs).
// This is the table information needed when `numberOfContours >= 0`, i.e. not composite glyphs.
type simpleGlyphDescription struct {
	// list of point indices for the last point of each contour, in increasing numeric order.
	endPtsOfContours []uint16 // numberOfContours elements.

	instructionLength uint16

	// one flag, one x-coordinate, and one y-coordinate for each point.
	// Coordinates are absolute (delta accumulated).
	flags        []simpleGlyphFlag
	xCoordinates []int16
	yCoordinates []int16
}

// parses description for a single simple glyph with `numContours` at current position in `r`.
// Returns nil when the glyph has no contours.
func parseSimpleGlyphDescription(r *byteReader, numContours int) (*simpleGlyphDescription, error) {
	if numContours == 0 {
		return nil, nil
	}

	var d simpleGlyphDescription

	err := r.readSlice(&d.endPtsOfContours, numContours)
	if err != nil {
		return nil, err
	}
	for i := 1; i < numContours; i++ {
		if d.endPtsOfContours[i] <= d.endPtsOfContours[i-1] {
			logrus.Debugf("Contour end points not increasing: %v", d.endPtsOfContours)
			return nil, errors.Wrapf(ErrMalformedGlyph, "contour end point %d after %d",
				d.endPtsOfContours[i], d.endPtsOfContours[i-1])
		}
	}

	err = r.read(&d.instructionLength)
	if err != nil {
		return nil, err
	}

	// Hinting instructions are not interpreted.
	err = r.Skip(int(d.instructionLength))
	if err != nil {
		return nil, err
	}

	// total number of points (all contours).
	numPoints := int(d.endPtsOfContours[numContours-1]) + 1
	logrus.Tracef("GID data - Number of points: %d", numPoints)

	d.flags, err = decodeFlags(r, numPoints)
	if err != nil {
		return nil, err
	}
	logrus.Tracef("@Offset: %d", r.Offset())

	d.xCoordinates, err = decodeCoordinates(r, d.flags, xShortVector, xIsSameOrPositiveVector)
	if err != nil {
		return nil, err
	}

	// y coordinates continue from where the x coordinates ended.
	d.yCoordinates, err = decodeCoordinates(r, d.flags, yShortVector, yIsSameOrPositiveVector)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// decodeFlags reads the run-length encoded flag stream and expands it to exactly `numPoints`
// flags. A flag with the repeat bit set is followed by a count of additional copies.
func decodeFlags(r *byteReader, numPoints int) ([]simpleGlyphFlag, error) {
	flags := make([]simpleGlyphFlag, 0, numPoints)
	for len(flags) < numPoints {
		b, err := r.readUint8()
		if err != nil {
			return nil, err
		}
		flag := simpleGlyphFlag(b)
		logrus.Tracef("flag: %d (%s)", flag, flag)
		flags = append(flags, flag)

		if flag&repeatFlag == 0 {
			continue
		}

		// following byte specifies number of times this flag is to be repeated.
		repeats, err := r.readUint8()
		if err != nil {
			return nil, err
		}
		if len(flags)+int(repeats) > numPoints {
			logrus.Debugf("Flag repeat overruns point count (%d+%d > %d)", len(flags), repeats, numPoints)
			return nil, errors.Wrapf(ErrMalformedGlyph, "flag repeat %d overruns %d points", repeats, numPoints)
		}
		for i := 0; i < int(repeats); i++ {
			flags = append(flags, flag)
		}
	}
	return flags, nil
}

// decodeCoordinates reads one coordinate per flag and accumulates the deltas into absolute
// values, starting from 0. `short` selects a one byte magnitude whose sign is given by
// `sameOrPositive`; otherwise `sameOrPositive` means a zero delta and its absence a signed
// 16-bit delta.
func decodeCoordinates(r *byteReader, flags []simpleGlyphFlag, short, sameOrPositive simpleGlyphFlag) ([]int16, error) {
	coords := make([]int16, len(flags))

	var acc int16
	for i, flag := range flags {
		switch {
		case flag&short != 0:
			delta, err := r.readUint8()
			if err != nil {
				return nil, err
			}
			if flag&sameOrPositive != 0 {
				acc += int16(delta)
			} else {
				acc -= int16(delta)
			}
		case flag&sameOrPositive == 0:
			delta, err := r.readInt16()
			if err != nil {
				return nil, err
			}
			acc += delta
		}
		coords[i] = acc
	}
	return coords, nil
}

// contours partitions the decoded points at the contour end points.
func (d *simpleGlyphDescription) contours() []Contour {
	contours := make([]Contour, 0, len(d.endPtsOfContours))
	start := 0
	for _, end := range d.endPtsOfContours {
		c := make(Contour, 0, int(end)+1-start)
		for i := start; i <= int(end); i++ {
			c = append(c, GlyphPoint{
				X:       d.xCoordinates[i],
				Y:       d.yCoordinates[i],
				OnCurve: d.flags[i]&onCurvePoint != 0,
			})
		}
		contours = append(contours, c)
		start = int(end) + 1
	}
	return contours
}
