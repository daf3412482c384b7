/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package render rasterizes decoded glyphs into images, either as raw points, as straight
// polylines through the points or as filled reconstructed outlines.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/unidoc/ttoutline/outline"
	"github.com/unidoc/ttoutline/truetype"
)

// Mode selects how a glyph is drawn.
type Mode string

// Draw modes.
const (
	Points   Mode = "points"
	Lines    Mode = "lines"
	Contours Mode = "contours"
)

// ParseMode returns the Mode named `s`.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Points, Lines, Contours:
		return m, nil
	}
	return "", errors.Errorf("unknown draw mode %q", s)
}

// Options controls the output image.
type Options struct {
	Mode    Mode
	Size    int     // width and height in pixels.
	Padding int     // margin around the glyph in pixels.
	Stroke  float64 // line width and point size in pixels.

	Background color.Color
	Foreground color.Color // fill color in Contours mode.
}

// DefaultOptions are the options used for zero fields.
var DefaultOptions = Options{
	Mode:       Contours,
	Size:       500,
	Padding:    20,
	Stroke:     2,
	Background: color.Black,
	Foreground: color.White,
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = DefaultOptions.Mode
	}
	if o.Size <= 0 {
		o.Size = DefaultOptions.Size
	}
	if o.Padding < 0 || 2*o.Padding >= o.Size {
		o.Padding = 0
	}
	if o.Stroke <= 0 {
		o.Stroke = DefaultOptions.Stroke
	}
	if o.Background == nil {
		o.Background = DefaultOptions.Background
	}
	if o.Foreground == nil {
		o.Foreground = DefaultOptions.Foreground
	}
	return o
}

// Glyph draws `g` into a new square image.
func Glyph(g *truetype.Glyph, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	dst := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if len(g.Contours) == 0 {
		logrus.Debugf("glyph %d has no contours, nothing to draw", g.Index)
		return dst, nil
	}

	v := newViewport(g, opts.Size, opts.Padding)
	z := vector.NewRasterizer(opts.Size, opts.Size)

	switch opts.Mode {
	case Points:
		for i, c := range g.Contours {
			z.Reset(opts.Size, opts.Size)
			for _, p := range c {
				addSquare(z, v.project(outline.Point(p)), opts.Stroke*1.5)
			}
			z.Draw(dst, dst.Bounds(), image.NewUniform(contourColor(i)), image.Point{})
		}
	case Lines:
		for i, c := range g.Contours {
			z.Reset(opts.Size, opts.Size)
			for k := range c {
				a := v.project(outline.Point(c[k]))
				b := v.project(outline.Point(c[(k+1)%len(c)]))
				addLine(z, a, b, opts.Stroke)
			}
			z.Draw(dst, dst.Bounds(), image.NewUniform(contourColor(i)), image.Point{})
		}
	case Contours:
		for _, segs := range outline.ReconstructContours(g) {
			addContour(z, v, segs)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	default:
		return nil, errors.Errorf("unknown draw mode %q", opts.Mode)
	}

	return dst, nil
}

// contourColor returns a distinct color per contour index.
func contourColor(i int) color.Color {
	hue := math.Mod(float64(i)*137.508, 360)
	return colorful.Hsv(hue, 0.65, 1).Clamped()
}

// viewport maps font units to pixels, fitting the glyph into a padded square with y pointing
// down.
type viewport struct {
	bounds r2.Rect
	scale  float64
	offset r2.Point
}

func newViewport(g *truetype.Glyph, size, padding int) viewport {
	b := g.Bounds
	bounds := r2.RectFromPoints(
		r2.Point{X: float64(b.XMin), Y: float64(b.YMin)},
		r2.Point{X: float64(b.XMax), Y: float64(b.YMax)},
	)
	for _, c := range g.Contours {
		for _, p := range c {
			bounds = bounds.AddPoint(r2.Point{X: float64(p.X), Y: float64(p.Y)})
		}
	}

	avail := float64(size - 2*padding)
	extent := bounds.Size()
	scale := avail / math.Max(math.Max(extent.X, extent.Y), 1)

	// Center the glyph inside the available square.
	offset := r2.Point{
		X: float64(padding) + (avail-extent.X*scale)/2,
		Y: float64(padding) + (avail-extent.Y*scale)/2,
	}
	return viewport{bounds: bounds, scale: scale, offset: offset}
}

func (v viewport) project(p fixed.Point26_6) r2.Point {
	x := float64(p.X) / 64
	y := float64(p.Y) / 64
	return r2.Point{
		X: v.offset.X + (x-v.bounds.X.Lo)*v.scale,
		Y: v.offset.Y + (v.bounds.Y.Hi-y)*v.scale,
	}
}

func addContour(z *vector.Rasterizer, v viewport, segs []outline.Segment) {
	if len(segs) == 0 {
		return
	}
	start := v.project(segs[0].From)
	z.MoveTo(float32(start.X), float32(start.Y))
	for _, s := range segs {
		to := v.project(s.To)
		if s.Kind == outline.Quadratic {
			c := v.project(s.Control)
			z.QuadTo(float32(c.X), float32(c.Y), float32(to.X), float32(to.Y))
			continue
		}
		z.LineTo(float32(to.X), float32(to.Y))
	}
	z.ClosePath()
}

// addLine adds a `width` pixel wide rectangle from `a` to `b`.
func addLine(z *vector.Rasterizer, a, b r2.Point, width float64) {
	d := b.Sub(a)
	if d.Norm() == 0 {
		addSquare(z, a, width)
		return
	}
	n := d.Ortho().Normalize().Mul(width / 2)
	p1, p2, p3, p4 := a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)
	z.MoveTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.LineTo(float32(p4.X), float32(p4.Y))
	z.ClosePath()
}

// addSquare adds an axis aligned square of side `size` centered on `p`.
func addSquare(z *vector.Rasterizer, p r2.Point, size float64) {
	h := size / 2
	z.MoveTo(float32(p.X-h), float32(p.Y-h))
	z.LineTo(float32(p.X+h), float32(p.Y-h))
	z.LineTo(float32(p.X+h), float32(p.Y+h))
	z.LineTo(float32(p.X-h), float32(p.Y+h))
	z.ClosePath()
}
