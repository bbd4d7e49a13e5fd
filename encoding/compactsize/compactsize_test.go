package compactsize

import (
	"bytes"
	"encoding/hex"
	"io"
	"math"
	"testing"
)

func TestUint(t *testing.T) {
	cases := []struct {
		n   uint64
		hex string
	}{
		{0, "00"},
		{1, "01"},
		{0xfc, "fc"},
		{0xfd, "fdfd00"},
		{0x3fff, "fdff3f"},
		{0xffff, "fdffff"},
		{0x10000, "fe00000100"},
		{0xffffffff, "feffffffff"},
		{0x100000000, "ff0000000001000000"},
		{math.MaxUint64, "ffffffffffffffffff"},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		n, err := WriteUint(&buf, c.n)
		if err != nil {
			t.Errorf("WriteUint(%d) error: %v", c.n, err)
			continue
		}
		if n != buf.Len() {
			t.Errorf("WriteUint(%d) = %d bytes, buffer has %d", c.n, n, buf.Len())
		}
		if got := hex.EncodeToString(buf.Bytes()); got != c.hex {
			t.Errorf("WriteUint(%d) = %s want %s", c.n, got, c.hex)
		}

		v, err := ReadUint(&buf)
		if err != nil {
			t.Errorf("ReadUint(%s) error: %v", c.hex, err)
			continue
		}
		if v != c.n {
			t.Errorf("ReadUint(%s) = %d want %d", c.hex, v, c.n)
		}
	}
}

func TestReadNonCanonical(t *testing.T) {
	cases := []string{
		"fd0000",             // 0 fits in one byte
		"fdfc00",             // 0xfc fits in one byte
		"fe00000000",         // 0 fits in one byte
		"feffff0000",         // 0xffff fits in three bytes
		"ff0000000000000000", // 0 fits in one byte
		"ffffffffff00000000", // 0xffffffff fits in five bytes
	}

	for _, c := range cases {
		b, _ := hex.DecodeString(c)
		_, err := ReadUint(bytes.NewReader(b))
		if err != ErrNonCanonical {
			t.Errorf("ReadUint(%s) err = %v want %v", c, err, ErrNonCanonical)
		}
	}
}

func TestReadTruncated(t *testing.T) {
	cases := []string{
		"",
		"fd",
		"fdff",
		"fe",
		"fe010203",
		"ff",
		"ff01020304050607",
	}

	for _, c := range cases {
		b, _ := hex.DecodeString(c)
		_, err := ReadUint(bytes.NewReader(b))
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			t.Errorf("ReadUint(%q) err = %v want EOF", c, err)
		}
	}
}
