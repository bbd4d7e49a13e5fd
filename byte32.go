package sapling

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/shieldpool/sapling/errors"
)

// Byte32 is a 32-byte field in the wire encoding: a value commitment,
// an anchor, a nullifier, a note commitment, or a key.
type Byte32 [32]byte

// String returns the bytes of b32 encoded in hex.
func (b32 Byte32) String() string {
	b, _ := b32.MarshalText()
	return string(b)
}

// MarshalText satisfies the TextMarshaler interface.
// It returns the bytes of b32 encoded in hex,
// for formats that can't hold arbitrary binary data.
// It never returns an error.
func (b32 Byte32) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(b32)))
	hex.Encode(b, b32[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
// It decodes hex data from b into b32.
func (b32 *Byte32) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(*b32)) {
		return errors.WithDetailf(
			ErrBadLength,
			"expected hex string of length %d, but got `%s`",
			hex.EncodedLen(len(*b32)),
			b,
		)
	}
	_, err := hex.Decode(b32[:], b)
	return err
}

// UnmarshalJSON satisfies the json.Unmarshaler interface.
// If b is a JSON-encoded null, it copies the zero-value into b32. Otherwise, it
// decodes hex data from b into b32.
func (b32 *Byte32) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*b32 = Byte32{}
		return nil
	}
	s := new(string)
	err := json.Unmarshal(b, s)
	if err != nil {
		return err
	}
	return b32.UnmarshalText([]byte(*s))
}
