/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package outline

import (
	"fmt"

	"golang.org/x/image/math/fixed"

	"github.com/unidoc/ttoutline/truetype"
)

// SegmentKind tells lines and quadratic curves apart.
type SegmentKind uint8

// Segment kinds.
const (
	Line SegmentKind = iota
	Quadratic
)

func (k SegmentKind) String() string {
	switch k {
	case Line:
		return "Line"
	case Quadratic:
		return "Quadratic"
	}
	return fmt.Sprintf("SegmentKind(%d)", uint8(k))
}

// Segment is a drawable piece of a contour. Coordinates are font design units in 26.6 fixed
// point, so one unit is fixed.I(1) and implied midpoints are exact. Control is only set for
// Quadratic segments.
type Segment struct {
	Kind    SegmentKind
	From    fixed.Point26_6
	Control fixed.Point26_6
	To      fixed.Point26_6
}

func (s Segment) String() string {
	if s.Kind == Quadratic {
		return fmt.Sprintf("Quadratic(%s, %s, %s)", formatPoint(s.From), formatPoint(s.Control), formatPoint(s.To))
	}
	return fmt.Sprintf("Line(%s, %s)", formatPoint(s.From), formatPoint(s.To))
}

func formatPoint(p fixed.Point26_6) string {
	return fmt.Sprintf("(%s, %s)", formatUnits(p.X), formatUnits(p.Y))
}

// formatUnits prints `v` in font units; only halves can occur.
func formatUnits(v fixed.Int26_6) string {
	if v%64 == 0 {
		return fmt.Sprintf("%d", int32(v)/64)
	}
	return fmt.Sprintf("%g", float64(v)/64)
}

// Point converts a decoded glyph point to fixed point font units.
func Point(p truetype.GlyphPoint) fixed.Point26_6 {
	return fixed.P(int(p.X), int(p.Y))
}

// Midpoint returns the point halfway between `a` and `b`.
func Midpoint(a, b fixed.Point26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func line(from, to fixed.Point26_6) Segment {
	return Segment{Kind: Line, From: from, To: to}
}

func quad(from, control, to fixed.Point26_6) Segment {
	return Segment{Kind: Quadratic, From: from, Control: control, To: to}
}
