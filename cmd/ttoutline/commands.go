/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/unidoc/ttoutline/internal/render"
	"github.com/unidoc/ttoutline/outline"
	"github.com/unidoc/ttoutline/truetype"
)

const separator = "--------------------------------------------------------------------------"

// TablesCmd prints the font directory.
type TablesCmd struct {
	Font string `arg:"" type:"existingfile" help:"TrueType font file."`
}

// Run executes the command.
func (c *TablesCmd) Run(g *Globals) error {
	fnt, err := truetype.ParseFile(c.Font)
	if err != nil {
		return err
	}
	printTables(os.Stdout, fnt)
	return nil
}

func printTables(w io.Writer, fnt *truetype.Font) {
	p := message.NewPrinter(language.English)
	ot := fnt.OffsetTable()

	p.Fprintf(w, "Font directory:\n")
	p.Fprintf(w, "Scalar type: 0x%08X\n", ot.SfntVersion)
	p.Fprintf(w, "Number of tables: %d\n", ot.NumTables)
	p.Fprintf(w, "Search range: %d\n", ot.SearchRange)
	p.Fprintf(w, "Entry selector: %d\n", ot.EntrySelector)
	p.Fprintf(w, "Range shift: %d\n", ot.RangeShift)
	fmt.Fprintln(w, separator)
	for i, tr := range fnt.Tables() {
		p.Fprintf(w, "Table %2d: Tag: %-4s  Checksum: 0x%08X  Offset: %9d  Length: %9d\n",
			i+1, tr.Tag, tr.Checksum, tr.Offset, tr.Length)
	}
	fmt.Fprintln(w, separator)
	p.Fprintf(w, "Number of glyphs: %d\n", fnt.NumGlyphs())
	p.Fprintf(w, "Units per em: %d\n", fnt.UnitsPerEm())
}

// GlyphCmd prints the raw points of one glyph.
type GlyphCmd struct {
	Font  string `arg:"" type:"existingfile" help:"TrueType font file."`
	Index uint16 `short:"i" default:"0" help:"Glyph index."`
}

// Run executes the command.
func (c *GlyphCmd) Run(g *Globals) error {
	glyph, err := decode(c.Font, c.Index)
	if err != nil {
		return err
	}
	printGlyph(os.Stdout, glyph)
	return nil
}

func printGlyph(w io.Writer, g *truetype.Glyph) {
	b := g.Bounds
	fmt.Fprintf(w, "Glyph %d data:\n", g.Index)
	fmt.Fprintf(w, "Bounds: (%d, %d) => (%d, %d)\n", b.XMin, b.YMin, b.XMax, b.YMax)

	ends := make([]string, len(g.EndPoints))
	for i, e := range g.EndPoints {
		ends[i] = fmt.Sprint(e)
	}
	fmt.Fprintf(w, "End point indices: [%s]\n", strings.Join(ends, ", "))

	i := 0
	for _, c := range g.Contours {
		for _, p := range c {
			state := "OFF curve:"
			if p.OnCurve {
				state = "ON curve :"
			}
			fmt.Fprintf(w, "Point %d is %s (%d, %d)\n", i, state, p.X, p.Y)
			i++
		}
	}
}

// OutlineCmd prints the reconstructed segments of one glyph.
type OutlineCmd struct {
	Font  string `arg:"" type:"existingfile" help:"TrueType font file."`
	Index uint16 `short:"i" default:"0" help:"Glyph index."`
}

// Run executes the command.
func (c *OutlineCmd) Run(g *Globals) error {
	glyph, err := decode(c.Font, c.Index)
	if err != nil {
		return err
	}
	printOutline(os.Stdout, glyph)
	return nil
}

func printOutline(w io.Writer, g *truetype.Glyph) {
	for i, segs := range outline.ReconstructContours(g) {
		fmt.Fprintf(w, "Contour %d: %d segments\n", i, len(segs))
		for _, s := range segs {
			fmt.Fprintf(w, "  %s\n", s)
		}
	}
}

// RenderCmd rasterizes one glyph to a PNG file.
type RenderCmd struct {
	Font    string `arg:"" type:"existingfile" help:"TrueType font file."`
	Index   uint16 `short:"i" default:"0" help:"Glyph index."`
	Mode    string `short:"m" default:"contours" enum:"points,lines,contours" help:"Draw mode (points, lines, contours)."`
	Size    int    `default:"500" help:"Image width and height in pixels."`
	Padding int    `default:"20" help:"Margin around the glyph in pixels."`
	Output  string `short:"o" default:"-" help:"Output PNG file, - for stdout."`
}

// Run executes the command.
func (c *RenderCmd) Run(g *Globals) error {
	mode, err := render.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	glyph, err := decode(c.Font, c.Index)
	if err != nil {
		return err
	}
	img, err := render.Glyph(glyph, render.Options{Mode: mode, Size: c.Size, Padding: c.Padding})
	if err != nil {
		return err
	}

	if c.Output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PNG data to a terminal, use -o")
		}
		return png.Encode(os.Stdout, img)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	logrus.Debugf("wrote glyph %d to %s", c.Index, c.Output)
	return f.Close()
}

// StatsCmd decodes every glyph and prints a summary.
type StatsCmd struct {
	Font    string `arg:"" type:"existingfile" help:"TrueType font file."`
	Workers int    `short:"w" default:"0" help:"Number of concurrent decoders, 0 for one per CPU."`
}

// Run executes the command.
func (c *StatsCmd) Run(g *Globals) error {
	fnt, err := truetype.ParseFile(c.Font)
	if err != nil {
		return err
	}
	s, err := collectStats(fnt, c.Workers)
	if err != nil {
		return err
	}
	s.print(os.Stdout)
	return nil
}

type glyphKind uint8

const (
	kindSimple glyphKind = iota
	kindEmpty
	kindComposite
	kindFailed
)

type glyphStats struct {
	simple, empty, composite, failed int
	segments, lines, quads           int
}

// collectStats decodes all glyphs of `fnt` with at most `workers` goroutines.
func collectStats(fnt *truetype.Font, workers int) (glyphStats, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := fnt.NumGlyphs()
	kinds := make([]glyphKind, n)
	lines := make([]int, n)
	quads := make([]int, n)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			g, err := fnt.DecodeGlyph(truetype.GlyphIndex(i))
			switch {
			case errors.Is(err, truetype.ErrUnsupportedCompositeGlyph):
				kinds[i] = kindComposite
				return nil
			case err != nil:
				logrus.Debugf("glyph %d: %v", i, err)
				kinds[i] = kindFailed
				return nil
			case len(g.Contours) == 0:
				kinds[i] = kindEmpty
				return nil
			}
			kinds[i] = kindSimple
			for _, s := range outline.Reconstruct(g) {
				if s.Kind == outline.Quadratic {
					quads[i]++
				} else {
					lines[i]++
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return glyphStats{}, err
	}

	var s glyphStats
	for i, k := range kinds {
		switch k {
		case kindSimple:
			s.simple++
		case kindEmpty:
			s.empty++
		case kindComposite:
			s.composite++
		case kindFailed:
			s.failed++
		}
		s.lines += lines[i]
		s.quads += quads[i]
	}
	s.segments = s.lines + s.quads
	return s, nil
}

func (s glyphStats) print(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Glyphs: %d\n", s.simple+s.empty+s.composite+s.failed)
	p.Fprintf(w, "  simple:    %d\n", s.simple)
	p.Fprintf(w, "  empty:     %d\n", s.empty)
	p.Fprintf(w, "  composite: %d\n", s.composite)
	p.Fprintf(w, "  failed:    %d\n", s.failed)
	p.Fprintf(w, "Segments: %d (%d lines, %d quadratic)\n", s.segments, s.lines, s.quads)
}

func decode(path string, index uint16) (*truetype.Glyph, error) {
	fnt, err := truetype.ParseFile(path)
	if err != nil {
		return nil, err
	}
	g, err := fnt.DecodeGlyph(truetype.GlyphIndex(index))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return g, nil
}
