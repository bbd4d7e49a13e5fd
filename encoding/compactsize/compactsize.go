// Package compactsize encodes and decodes unsigned integers
// using the Bitcoin CompactSize format: a single tag byte
// followed by zero, two, four, or eight bytes of little-endian payload.
package compactsize

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/shieldpool/sapling/errors"
)

// ErrNonCanonical indicates an encoding that uses more bytes
// than the value it carries requires.
var ErrNonCanonical = errors.New("compact size is not canonical")

// ReadUint reads a CompactSize-encoded integer from r.
// Values encoded in more bytes than necessary are rejected
// with ErrNonCanonical.
func ReadUint(r io.Reader) (uint64, error) {
	var b [8]byte
	_, err := io.ReadFull(r, b[0:1])
	if err != nil {
		return 0, err
	}

	var v, min uint64
	switch b[0] {
	case 0xff:
		_, err = io.ReadFull(r, b[:])
		v = binary.LittleEndian.Uint64(b[:])
		min = 0x100000000
	case 0xfe:
		_, err = io.ReadFull(r, b[0:4])
		v = uint64(binary.LittleEndian.Uint32(b[:4]))
		min = 0x10000
	case 0xfd:
		_, err = io.ReadFull(r, b[0:2])
		v = uint64(binary.LittleEndian.Uint16(b[:2]))
		min = 0xfd
	default:
		v = uint64(b[0])
	}
	if err != nil {
		return 0, err
	}
	if v < min {
		return 0, ErrNonCanonical
	}
	return v, nil
}

// WriteUint serializes v to w in the CompactSize format.
// It returns the number of bytes written.
func WriteUint(w io.Writer, v uint64) (int, error) {
	var buf [9]byte
	switch {
	case v < 0xfd:
		return w.Write([]byte{uint8(v)})
	case v <= math.MaxUint16:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(v))
		return w.Write(buf[:3])
	case v <= math.MaxUint32:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(v))
		return w.Write(buf[:5])
	default: // v > math.MaxUint32
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], v)
		return w.Write(buf[:9])
	}
}
