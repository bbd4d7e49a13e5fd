package sapling

import (
	"io"

	"github.com/shieldpool/sapling/errors"
)

// outputSize is the serialized width of one output description:
// cv, cmu, ephemeralKey, encCiphertext, outCiphertext, zkproof.
const outputSize = 32 + 32 + 32 + noteCiphertextSize + outCiphertextSize + proofSize

// OutputDescription is a fully populated shielded output. Outputs
// carry no signature slot; they require no individual authorization.
type OutputDescription struct {
	CV            Byte32         `json:"cv"`
	Cmu           Byte32         `json:"cmu"`
	EphemeralKey  Byte32         `json:"ephemeral_key"`
	EncCiphertext NoteCiphertext `json:"enc_ciphertext"`
	OutCiphertext OutCiphertext  `json:"out_ciphertext"`
	Zkproof       Proof          `json:"zkproof"`
}

// NewOutputDescription builds an output from its externally produced
// parts. Every part must have the exact width of its wire field; no
// cryptographic checks are performed.
func NewOutputDescription(cv, cmu, ephemeralKey, encCiphertext, outCiphertext, zkproof []byte) (*OutputDescription, error) {
	o := new(OutputDescription)
	if err := copyExact(o.CV[:], cv, "value commitment"); err != nil {
		return nil, err
	}
	if err := copyExact(o.Cmu[:], cmu, "note commitment"); err != nil {
		return nil, err
	}
	if err := copyExact(o.EphemeralKey[:], ephemeralKey, "ephemeral key"); err != nil {
		return nil, err
	}
	if err := copyExact(o.EncCiphertext[:], encCiphertext, "note ciphertext"); err != nil {
		return nil, err
	}
	if err := copyExact(o.OutCiphertext[:], outCiphertext, "outgoing ciphertext"); err != nil {
		return nil, err
	}
	if err := copyExact(o.Zkproof[:], zkproof, "proof"); err != nil {
		return nil, err
	}
	return o, nil
}

// assumes w has sticky errors
func (o *OutputDescription) writeTo(w io.Writer) {
	w.Write(o.CV[:])
	w.Write(o.Cmu[:])
	w.Write(o.EphemeralKey[:])
	w.Write(o.EncCiphertext[:])
	w.Write(o.OutCiphertext[:])
	w.Write(o.Zkproof[:])
}

func (o *OutputDescription) readFrom(r io.Reader) error {
	_, err := io.ReadFull(r, o.CV[:])
	if err != nil {
		return errors.Wrap(err, "reading value commitment")
	}
	_, err = io.ReadFull(r, o.Cmu[:])
	if err != nil {
		return errors.Wrap(err, "reading note commitment")
	}
	_, err = io.ReadFull(r, o.EphemeralKey[:])
	if err != nil {
		return errors.Wrap(err, "reading ephemeral key")
	}
	_, err = io.ReadFull(r, o.EncCiphertext[:])
	if err != nil {
		return errors.Wrap(err, "reading note ciphertext")
	}
	_, err = io.ReadFull(r, o.OutCiphertext[:])
	if err != nil {
		return errors.Wrap(err, "reading outgoing ciphertext")
	}
	_, err = io.ReadFull(r, o.Zkproof[:])
	if err != nil {
		return errors.Wrap(err, "reading proof")
	}
	return nil
}
