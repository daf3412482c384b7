/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedParts(t *testing.T) {
	tcases := []struct {
		val fixed
		a   uint16
		b   uint16
		f64 float64
	}{
		{
			fixed(0x00010000),
			0x0001,
			0x0000,
			1.0,
		},
		{
			fixed(0x00005000),
			0x0000,
			0x5000,
			0.3125,
		},
		{
			fixed(0x00028000),
			0x0002,
			0x8000,
			2.5,
		},
	}

	for _, tcase := range tcases {
		a, b := tcase.val.Parts()
		if a != tcase.a {
			t.Fatalf("%d != %d", a, tcase.a)
		}
		if b != tcase.b {
			t.Fatalf("%d != %d", b, tcase.b)
		}
		f64 := tcase.val.Float64()
		if f64 != tcase.f64 {
			t.Fatalf("%v != %v", f64, tcase.f64)
		}
	}
}

func TestMakeTag(t *testing.T) {
	assert.Equal(t, tag{'c', 'v', 't', ' '}, makeTag("cvt"))
	assert.Equal(t, tag{'g', 'l', 'y', 'f'}, makeTag("glyf"))
	assert.Equal(t, tag{'l', 'o', 'c', 'a'}, makeTag("locale"))
	assert.Equal(t, "cvt", makeTag("cvt").String())
	assert.Equal(t, "OS/2", makeTag("OS/2").String())
}
