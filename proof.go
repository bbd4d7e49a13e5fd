package sapling

import (
	"encoding/hex"

	"github.com/shieldpool/sapling/errors"
)

// proofSize is the width of a Groth16 proof in the wire encoding.
const proofSize = 192

// Proof is an opaque zero-knowledge proof. The package never
// inspects its contents.
type Proof [proofSize]byte

// String returns the bytes of p encoded in hex.
func (p Proof) String() string {
	b, _ := p.MarshalText()
	return string(b)
}

// MarshalText satisfies the TextMarshaler interface.
func (p Proof) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(b, p[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
func (p *Proof) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(*p)) {
		return errors.WithDetailf(ErrBadLength, "expected hex string of length %d, but got %d bytes", hex.EncodedLen(len(*p)), len(b))
	}
	_, err := hex.Decode(p[:], b)
	return err
}
