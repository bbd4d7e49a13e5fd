package sapling

import (
	"io"

	"github.com/shieldpool/sapling/errors"
)

// spendSize is the serialized width of one spend description:
// cv, anchor, nullifier, rk, zkproof, spendAuthSig.
const spendSize = 32 + 32 + 32 + 32 + proofSize + 64

// SpendTemplate is the pre-authorization form of a spend: every field
// a spend description carries except the authorization signature,
// which the type cannot hold. Templates are what exist while signing
// sessions are still running.
type SpendTemplate struct {
	CV        Byte32 `json:"cv"`
	Anchor    Byte32 `json:"anchor"`
	Nullifier Byte32 `json:"nullifier"`
	Rk        Byte32 `json:"rk"`
	Zkproof   Proof  `json:"zkproof"`
}

// SpendDescription is a fully populated spend. It exists only with
// its authorization signature present; construct one with
// NewSpendDescription or by pairing a template with its signature.
type SpendDescription struct {
	SpendTemplate
	SpendAuthSig Byte64 `json:"spend_auth_sig"`
}

// NewSpendTemplate builds the unauthorized form of a spend from its
// externally produced parts. Every part must have the exact width of
// its wire field. No cryptographic checks are performed; callers are
// responsible for supplying material that verifies under consensus.
func NewSpendTemplate(cv, anchor, nullifier, rk, zkproof []byte) (*SpendTemplate, error) {
	t := new(SpendTemplate)
	if err := copyExact(t.CV[:], cv, "value commitment"); err != nil {
		return nil, err
	}
	if err := copyExact(t.Anchor[:], anchor, "anchor"); err != nil {
		return nil, err
	}
	if err := copyExact(t.Nullifier[:], nullifier, "nullifier"); err != nil {
		return nil, err
	}
	if err := copyExact(t.Rk[:], rk, "verification key"); err != nil {
		return nil, err
	}
	if err := copyExact(t.Zkproof[:], zkproof, "proof"); err != nil {
		return nil, err
	}
	return t, nil
}

// WithSignature pairs t with the spend authorization signature
// produced for it, yielding the completed descriptor. The template is
// not modified.
func (t *SpendTemplate) WithSignature(sig []byte) (*SpendDescription, error) {
	s := &SpendDescription{SpendTemplate: *t}
	if err := copyExact(s.SpendAuthSig[:], sig, "spend authorization signature"); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSpendDescription builds a complete spend from its externally
// produced parts, signature included. The contract is the same as
// NewSpendTemplate's: exact field widths, no cryptographic checks.
func NewSpendDescription(cv, anchor, nullifier, rk, zkproof, spendAuthSig []byte) (*SpendDescription, error) {
	t, err := NewSpendTemplate(cv, anchor, nullifier, rk, zkproof)
	if err != nil {
		return nil, err
	}
	return t.WithSignature(spendAuthSig)
}

// copyExact copies src into dst if the lengths match exactly.
func copyExact(dst, src []byte, field string) error {
	if len(src) != len(dst) {
		return errors.WithDetailf(ErrBadLength, "%s is %d bytes, want %d", field, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

// assumes w has sticky errors
func (t *SpendTemplate) writeTo(w io.Writer) {
	w.Write(t.CV[:])
	w.Write(t.Anchor[:])
	w.Write(t.Nullifier[:])
	w.Write(t.Rk[:])
	w.Write(t.Zkproof[:])
}

// assumes w has sticky errors
func (s *SpendDescription) writeTo(w io.Writer) {
	s.SpendTemplate.writeTo(w)
	w.Write(s.SpendAuthSig[:])
}

func (s *SpendDescription) readFrom(r io.Reader) error {
	_, err := io.ReadFull(r, s.CV[:])
	if err != nil {
		return errors.Wrap(err, "reading value commitment")
	}
	_, err = io.ReadFull(r, s.Anchor[:])
	if err != nil {
		return errors.Wrap(err, "reading anchor")
	}
	_, err = io.ReadFull(r, s.Nullifier[:])
	if err != nil {
		return errors.Wrap(err, "reading nullifier")
	}
	_, err = io.ReadFull(r, s.Rk[:])
	if err != nil {
		return errors.Wrap(err, "reading verification key")
	}
	_, err = io.ReadFull(r, s.Zkproof[:])
	if err != nil {
		return errors.Wrap(err, "reading proof")
	}
	_, err = io.ReadFull(r, s.SpendAuthSig[:])
	if err != nil {
		return errors.Wrap(err, "reading spend authorization signature")
	}
	return nil
}
