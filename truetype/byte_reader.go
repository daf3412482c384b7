/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// readUint32At returns the big endian uint32 at `off` in `buf`.
func readUint32At(buf []byte, off int) (uint32, error) {
	if off < 0 || off > len(buf)-4 {
		return 0, errors.Wrapf(ErrOutOfBounds, "uint32 at offset %d (size %d)", off, len(buf))
	}
	return binary.BigEndian.Uint32(buf[off:]), nil
}

// readUint16At returns the big endian uint16 at `off` in `buf`.
func readUint16At(buf []byte, off int) (uint16, error) {
	if off < 0 || off > len(buf)-2 {
		return 0, errors.Wrapf(ErrOutOfBounds, "uint16 at offset %d (size %d)", off, len(buf))
	}
	return binary.BigEndian.Uint16(buf[off:]), nil
}

// byteReader is a cursor over an immutable font buffer and provides methods to read binary data
// as needed for truetype fonts. All reads are bounds checked; a read that fails leaves the cursor
// where it was.
type byteReader struct {
	buf []byte
	off int
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

// Offset returns current offset position of `r`.
func (r *byteReader) Offset() int {
	return r.off
}

// Seek seeks to offset.
func (r *byteReader) Seek(offset int) error {
	if offset < 0 || offset > len(r.buf) {
		return errors.Wrapf(ErrOutOfBounds, "seek to %d (size %d)", offset, len(r.buf))
	}
	r.off = offset
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrOutOfBounds, "negative skip %d", n)
	}
	return r.Seek(r.off + n)
}

// take returns the next `n` bytes and advances past them.
func (r *byteReader) take(n int) ([]byte, error) {
	if n < 0 || r.off > len(r.buf)-n {
		return nil, errors.Wrapf(ErrOutOfBounds, "read %d bytes at offset %d (size %d)", n, r.off, len(r.buf))
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// readSlice reads a series of values into `slice` from `r` (big endian).
func (r *byteReader) readSlice(slice interface{}, length int) error {
	switch t := slice.(type) {
	case *[]uint8:
		b, err := r.take(length)
		if err != nil {
			return err
		}
		*t = append(*t, b...)
	case *[]uint16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]offset16:
		for i := 0; i < length; i++ {
			val, err := r.readOffset16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]offset32:
		for i := 0; i < length; i++ {
			val, err := r.readOffset32()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}

	default:
		logrus.Debugf("Unsupported type: %T (readSlice)", t)
		return errTypeCheck
	}
	return nil
}

// read reads a series of fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case *fixed:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = fixed(val)
		case *int16:
			val, err := r.readInt16()
			if err != nil {
				return err
			}
			*t = val
		case *offset16:
			val, err := r.readOffset16()
			if err != nil {
				return err
			}
			*t = val
		case *offset32:
			val, err := r.readOffset32()
			if err != nil {
				return err
			}
			*t = val
		case *uint8:
			val, err := r.readUint8()
			if err != nil {
				return err
			}
			*t = val
		case *uint16:
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = val
		case *tag:
			val, err := r.readTag()
			if err != nil {
				return err
			}
			*t = val
		case *uint32:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = val

		default:
			logrus.Debugf("Unsupported type: %T (read)", t)
			return errTypeCheck
		}
	}
	return nil
}

func (r *byteReader) readUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readUint16() (uint16, error) {
	val, err := readUint16At(r.buf, r.off)
	if err != nil {
		return 0, err
	}
	r.off += 2
	return val, nil
}

func (r *byteReader) readInt16() (int16, error) {
	val, err := r.readUint16()
	return int16(val), err
}

func (r *byteReader) readUint32() (uint32, error) {
	val, err := readUint32At(r.buf, r.off)
	if err != nil {
		return 0, err
	}
	r.off += 4
	return val, nil
}

func (r *byteReader) readTag() (tag, error) {
	var val tag
	b, err := r.take(4)
	if err != nil {
		return val, err
	}
	copy(val[:], b)
	return val, nil
}

func (r *byteReader) readOffset16() (offset16, error) {
	val, err := r.readUint16()
	return offset16(val), err
}

func (r *byteReader) readOffset32() (offset32, error) {
	val, err := r.readUint32()
	return offset32(val), err
}
