/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command ttoutline inspects the table directory and simple glyph outlines of truetype fonts.
//
// Usage:
//
//	ttoutline tables FONT
//	ttoutline glyph FONT --index N
//	ttoutline outline FONT --index N
//	ttoutline render FONT --index N --mode contours -o glyph.png
//	ttoutline stats FONT --workers 8
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Globals are flags shared by all commands.
type Globals struct {
	LogLevel string `help:"Log level (trace, debug, info, warn, error)." default:"warn" enum:"trace,debug,info,warn,error"`
}

var cli struct {
	Globals

	Tables  TablesCmd  `cmd:"" help:"Print the offset subtable and table records."`
	Glyph   GlyphCmd   `cmd:"" help:"Print the decoded points of a glyph."`
	Outline OutlineCmd `cmd:"" help:"Print the reconstructed line and curve segments of a glyph."`
	Render  RenderCmd  `cmd:"" help:"Rasterize a glyph to PNG."`
	Stats   StatsCmd   `cmd:"" help:"Decode every glyph and summarize the results."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ttoutline"),
		kong.Description("Decode truetype glyph outlines."),
		kong.UsageOnError(),
	)

	logrus.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	logrus.SetLevel(level)

	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
