/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype loads truetype font binaries and decodes simple glyph outlines into
// absolute point sequences per contour. Composite glyphs and hinting instructions are not
// interpreted.
package truetype
