/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// byteWriter provides methods to write binary data as fit for truetype fonts. Tests use it to
// assemble synthetic font files.
type byteWriter struct {
	buffer bytes.Buffer
}

func (w *byteWriter) bytes() []byte {
	return w.buffer.Bytes()
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// pad appends zero bytes until the buffer length is a multiple of 4.
func (w *byteWriter) pad() {
	for w.buffer.Len()%4 != 0 {
		w.buffer.WriteByte(0)
	}
}

// checksum returns the checksum of the current buffer.
func (w *byteWriter) checksum() uint32 {
	data := w.buffer.Bytes()

	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var dup [4]byte
		copy(dup[:], data[i:])
		sum += binary.BigEndian.Uint32(dup[:])
	}
	return sum
}

// write writes a series of values to `w` (big endian).
func (w *byteWriter) write(fields ...interface{}) {
	for _, f := range fields {
		switch t := f.(type) {
		case uint8, uint16, int16, uint32, tag, offset16, offset32:
			_ = binary.Write(&w.buffer, binary.BigEndian, t)
		case []byte:
			w.buffer.Write(t)
		default:
			panic(fmt.Sprintf("Write type check error: %T", t))
		}
	}
}
