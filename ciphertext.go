package sapling

import (
	"encoding/hex"

	"github.com/shieldpool/sapling/errors"
)

// Ciphertext widths in the wire encoding. Both fields are fixed-size;
// the format has no variable-length ciphertexts.
const (
	noteCiphertextSize = 580
	outCiphertextSize  = 80
)

// NoteCiphertext is the encrypted note payload of an output,
// readable by the recipient.
type NoteCiphertext [noteCiphertextSize]byte

// OutCiphertext is the encrypted outgoing payload of an output,
// readable by the sender's outgoing viewing key.
type OutCiphertext [outCiphertextSize]byte

func (c NoteCiphertext) String() string {
	b, _ := c.MarshalText()
	return string(b)
}

// MarshalText satisfies the TextMarshaler interface.
func (c NoteCiphertext) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(c)))
	hex.Encode(b, c[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
func (c *NoteCiphertext) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(*c)) {
		return errors.WithDetailf(ErrBadLength, "expected hex string of length %d, but got %d bytes", hex.EncodedLen(len(*c)), len(b))
	}
	_, err := hex.Decode(c[:], b)
	return err
}

func (c OutCiphertext) String() string {
	b, _ := c.MarshalText()
	return string(b)
}

// MarshalText satisfies the TextMarshaler interface.
func (c OutCiphertext) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(c)))
	hex.Encode(b, c[:])
	return b, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
func (c *OutCiphertext) UnmarshalText(b []byte) error {
	if len(b) != hex.EncodedLen(len(*c)) {
		return errors.WithDetailf(ErrBadLength, "expected hex string of length %d, but got %d bytes", hex.EncodedLen(len(*c)), len(b))
	}
	_, err := hex.Decode(c[:], b)
	return err
}
