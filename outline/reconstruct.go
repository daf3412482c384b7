/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package outline

import (
	"github.com/sirupsen/logrus"

	"github.com/unidoc/ttoutline/truetype"
)

// pointState tags a contour point as lying on the outline or being a control point.
type pointState uint8

const (
	offCurve pointState = iota
	onCurve
)

func stateOf(p truetype.GlyphPoint) pointState {
	if p.OnCurve {
		return onCurve
	}
	return offCurve
}

// transition is the classification of one contour point together with its neighbors.
// An on-curve point looks at (current, next, next-next); an off-curve point looks at
// (previous, current, next).
type transition uint8

const (
	onOn       transition = iota // line to the next point.
	onOffOn                      // curve through one control point.
	onOffOff                     // curve ending at an implied midpoint.
	offAfterOn                   // already emitted by the preceding on-curve point.
	offOffOn                     // curve from an implied midpoint to the next point.
	offOffOff                    // curve between two implied midpoints.
)

var transitionNames = [...]string{"onOn", "onOffOn", "onOffOff", "offAfterOn", "offOffOn", "offOffOff"}

func (t transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "invalid"
}

// classify returns the transition for the window (first, second, third), where `first` is the
// current point if on-curve, and `second` is the current point otherwise.
func classify(first, second, third pointState, currentOnCurve bool) transition {
	if currentOnCurve {
		switch {
		case second == onCurve:
			return onOn
		case third == onCurve:
			return onOffOn
		default:
			return onOffOff
		}
	}
	switch {
	case first == onCurve:
		return offAfterOn
	case third == onCurve:
		return offOffOn
	default:
		return offOffOff
	}
}

// neighbor maps index `i` into a cyclic contour of `n` points: -1 is the last point and `n` is
// the first.
func neighbor(n, i int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// window returns the three points examined for point `i` of `c`.
func window(c truetype.Contour, i int) (first, second, third truetype.GlyphPoint) {
	n := len(c)
	if c[i].OnCurve {
		return c[i], c[neighbor(n, i+1)], c[neighbor(n, i+2)]
	}
	return c[neighbor(n, i-1)], c[i], c[neighbor(n, i+1)]
}

// ReconstructContour converts the points of a contour into segments in traversal order. Every
// on-curve point, stored or implied, starts exactly one segment, and the last segment ends where
// the first one starts. A single point contour gives one zero length segment.
func ReconstructContour(c truetype.Contour) []Segment {
	segs := make([]Segment, 0, len(c))
	for i := range c {
		first, second, third := window(c, i)
		p1, p2, p3 := Point(first), Point(second), Point(third)

		t := classify(stateOf(first), stateOf(second), stateOf(third), c[i].OnCurve)
		switch t {
		case onOn:
			segs = append(segs, line(p1, p2))
		case onOffOn:
			segs = append(segs, quad(p1, p2, p3))
		case onOffOff:
			segs = append(segs, quad(p1, p2, Midpoint(p2, p3)))
		case offAfterOn:
		case offOffOn:
			segs = append(segs, quad(Midpoint(p1, p2), p2, p3))
		case offOffOff:
			segs = append(segs, quad(Midpoint(p1, p2), p2, Midpoint(p2, p3)))
		}
	}
	return segs
}

// ReconstructContours returns the segments of each contour of `g` separately.
func ReconstructContours(g *truetype.Glyph) [][]Segment {
	contours := make([][]Segment, 0, len(g.Contours))
	for _, c := range g.Contours {
		contours = append(contours, ReconstructContour(c))
	}
	return contours
}

// Reconstruct returns the segments of all contours of `g`, concatenated in contour order.
func Reconstruct(g *truetype.Glyph) []Segment {
	var segs []Segment
	for _, c := range ReconstructContours(g) {
		segs = append(segs, c...)
	}
	logrus.Tracef("glyph %d: %d contours, %d segments", g.Index, len(g.Contours), len(segs))
	return segs
}
