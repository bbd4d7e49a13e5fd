package sapling

import (
	"encoding/hex"

	"github.com/shieldpool/sapling/errors"
)

// Byte64 is a 64-byte signature field: a spend authorization
// signature or the bundle's binding signature.
type Byte64 [64]byte

// String returns the bytes of b64 encoded in hex.
func (b64 Byte64) String() string {
	b, _ := b64.MarshalText()
	return string(b)
}

// MarshalText satisfies the TextMarshaler interface.
func (b64 Byte64) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(b64)))
	hex.Encode(b, b64[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
func (b64 *Byte64) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(*b64)) {
		return errors.WithDetailf(ErrBadLength, "expected hex string of length %d, but got `%s`", hex.EncodedLen(len(*b64)), b)
	}
	_, err := hex.Decode(b64[:], b)
	return err
}
