/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package outline turns decoded truetype contours into straight line and quadratic Bézier
// segments. Segments are pure geometry in font design units and carry no on/off-curve flags.
package outline
