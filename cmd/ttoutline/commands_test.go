/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/ttoutline/truetype"
)

var triangle = &truetype.Glyph{
	Index:     3,
	Bounds:    truetype.BoundingBox{XMin: 0, YMin: 0, XMax: 100, YMax: 50},
	EndPoints: []uint16{2},
	Contours: []truetype.Contour{{
		{X: 0, Y: 0, OnCurve: true},
		{X: 50, Y: 50},
		{X: 100, Y: 0, OnCurve: true},
	}},
}

func TestPrintGlyph(t *testing.T) {
	var buf bytes.Buffer
	printGlyph(&buf, triangle)

	expected := "Glyph 3 data:\n" +
		"Bounds: (0, 0) => (100, 50)\n" +
		"End point indices: [2]\n" +
		"Point 0 is ON curve : (0, 0)\n" +
		"Point 1 is OFF curve: (50, 50)\n" +
		"Point 2 is ON curve : (100, 0)\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintOutline(t *testing.T) {
	var buf bytes.Buffer
	printOutline(&buf, triangle)

	expected := "Contour 0: 2 segments\n" +
		"  Quadratic((0, 0), (50, 50), (100, 0))\n" +
		"  Line((100, 0), (0, 0))\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintTables(t *testing.T) {
	fnt, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	var buf bytes.Buffer
	printTables(&buf, fnt)
	out := buf.String()

	assert.Contains(t, out, "Font directory:")
	assert.Contains(t, out, fmt.Sprintf("Number of tables: %d\n", len(fnt.Tables())))
	assert.Contains(t, out, "Tag: glyf")
	assert.Contains(t, out, "Tag: loca")
	assert.Contains(t, out, "Units per em: 2,048")
}

func TestCollectStats(t *testing.T) {
	fnt, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	s, err := collectStats(fnt, 4)
	require.NoError(t, err)
	assert.Equal(t, fnt.NumGlyphs(), s.simple+s.empty+s.composite+s.failed)
	assert.Zero(t, s.failed)
	assert.Greater(t, s.simple, 0)
	assert.Greater(t, s.empty, 0, "space has no outline")
	assert.Equal(t, s.lines+s.quads, s.segments)

	serial, err := collectStats(fnt, 1)
	require.NoError(t, err)
	assert.Equal(t, s, serial)

	var buf bytes.Buffer
	s.print(&buf)
	assert.Contains(t, buf.String(), "  composite: ")
}
