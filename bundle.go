package sapling

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/shieldpool/sapling/encoding/bufpool"
	"github.com/shieldpool/sapling/encoding/compactsize"
	"github.com/shieldpool/sapling/errors"
)

// Decoder limits derived from the consensus ceiling on serialized
// transaction size. A declared count whose descriptors could not fit
// in a maximal transaction is rejected before anything is allocated.
const (
	maxTxSize  = 2000000
	maxSpends  = maxTxSize / spendSize
	maxOutputs = maxTxSize / outputSize
)

// Errors reported by the assembler and the codec.
var (
	ErrEmptyBundle   = errors.New("bundle has no spends or outputs")
	ErrBadLength     = errors.New("bad field length")
	ErrTrailingBytes = errors.New("trailing bytes after bundle")
)

// BundleTemplate is the pre-authorization state of a bundle: the
// spends awaiting signatures, the outputs (complete as constructed),
// and the net value balance. It has no signature fields. Sequence
// order is chosen by the caller and preserved through authorization
// and serialization.
type BundleTemplate struct {
	Spends       []SpendTemplate     `json:"spends"`
	Outputs      []OutputDescription `json:"outputs"`
	ValueBalance Amount              `json:"value_balance"`
}

// Bundle is an authorized shielded bundle: completed spends,
// outputs, a value balance, and a binding signature. Its fields are
// unexported so that the only ways to produce one are Assemble and
// the decoder; no partially signed value can have this type.
type Bundle struct {
	spends       []SpendDescription
	outputs      []OutputDescription
	valueBalance Amount
	bindingSig   Byte64
}

// Assemble combines completed descriptors, a value balance, and a
// binding signature into an authorized bundle. It is the single
// transition into the authorized state.
//
// If both sequences are empty there is nothing to shield and
// Assemble reports ErrEmptyBundle; an authorized empty bundle is
// meaningless and must never reach the wire. Otherwise the returned
// bundle holds the argument slices verbatim: no copying, no
// reordering, no deduplication. Assemble never modifies its
// arguments and is deterministic.
//
// The descriptors' signatures and proofs are not verified here or
// anywhere in this package; the network validates the encoded bytes.
func Assemble(spends []SpendDescription, outputs []OutputDescription, valueBalance Amount, bindingSig Byte64) (*Bundle, error) {
	if len(spends) == 0 && len(outputs) == 0 {
		return nil, ErrEmptyBundle
	}
	if !valueBalance.valid() {
		return nil, errors.WithDetailf(ErrRange, "value balance %d", int64(valueBalance))
	}
	return &Bundle{
		spends:       spends,
		outputs:      outputs,
		valueBalance: valueBalance,
		bindingSig:   bindingSig,
	}, nil
}

// Spends returns the bundle's spends in assembly order.
// The slice is the bundle's own; callers must not modify it.
func (b *Bundle) Spends() []SpendDescription { return b.spends }

// Outputs returns the bundle's outputs in assembly order.
// The slice is the bundle's own; callers must not modify it.
func (b *Bundle) Outputs() []OutputDescription { return b.outputs }

// ValueBalance returns the net value entering (negative) or leaving
// (positive) the shielded pool.
func (b *Bundle) ValueBalance() Amount { return b.valueBalance }

// BindingSig returns the bundle's binding signature.
func (b *Bundle) BindingSig() Byte64 { return b.bindingSig }

// WriteTo satisfies the io.WriterTo interface,
// writing the canonical encoding of b:
// the value balance as a little-endian int64, the spend sequence and
// output sequence each preceded by a CompactSize count, and the
// binding signature last.
func (b *Bundle) WriteTo(w io.Writer) (int64, error) {
	ew := errors.NewWriter(w)
	b.writeTo(ew)
	return ew.Written(), ew.Err()
}

// assumes w has sticky errors
func (b *Bundle) writeTo(w io.Writer) {
	var balance [8]byte
	binary.LittleEndian.PutUint64(balance[:], uint64(int64(b.valueBalance)))
	w.Write(balance[:])
	compactsize.WriteUint(w, uint64(len(b.spends)))
	for i := range b.spends {
		b.spends[i].writeTo(w)
	}
	compactsize.WriteUint(w, uint64(len(b.outputs)))
	for i := range b.outputs {
		b.outputs[i].writeTo(w)
	}
	w.Write(b.bindingSig[:])
}

// Bytes returns the canonical encoding of b.
func (b *Bundle) Bytes() []byte {
	buf := bufpool.Get()
	defer bufpool.Put(buf)
	b.WriteTo(buf) // error impossible
	return bufpool.CopyBytes(buf)
}

// MarshalText satisfies the TextMarshaler interface.
// It returns the canonical encoding of b in hex.
func (b *Bundle) MarshalText() ([]byte, error) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)
	_, err := b.WriteTo(buf)
	if err != nil {
		return nil, err
	}

	enc := make([]byte, hex.EncodedLen(buf.Len()))
	hex.Encode(enc, buf.Bytes())
	return enc, nil
}

// UnmarshalText satisfies the TextUnmarshaler interface.
// It decodes a hex encoding produced by MarshalText,
// rejecting trailing data.
func (b *Bundle) UnmarshalText(text []byte) error {
	decoded := make([]byte, hex.DecodedLen(len(text)))
	_, err := hex.Decode(decoded, text)
	if err != nil {
		return err
	}
	dec, err := DecodeBundleBytes(decoded)
	if err != nil {
		return err
	}
	*b = *dec
	return nil
}

// MarshalJSON satisfies the json.Marshaler interface,
// rendering the bundle as an object rather than a hex string.
func (b *Bundle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Spends       []SpendDescription  `json:"spends"`
		Outputs      []OutputDescription `json:"outputs"`
		ValueBalance Amount              `json:"value_balance"`
		BindingSig   Byte64              `json:"binding_sig"`
	}{b.spends, b.outputs, b.valueBalance, b.bindingSig})
}

// DecodeBundle reads one encoded bundle from r and reconstructs it.
// It reads exactly the bundle's bytes and no more. Failures are
// format errors wrapped with the offset reached; the underlying
// cause is recoverable with errors.Root.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	er := errors.NewReader(r)
	b := new(Bundle)
	err := b.readFrom(er)
	if err != nil {
		return nil, errors.Wrapf(err, "bundle offset %d", er.BytesRead())
	}
	return b, nil
}

// DecodeBundleBytes decodes exactly one bundle from data,
// rejecting trailing bytes.
func DecodeBundleBytes(data []byte) (*Bundle, error) {
	r := bytes.NewReader(data)
	b, err := DecodeBundle(r)
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, errors.WithDetailf(ErrTrailingBytes, "%d bytes after bundle", r.Len())
	}
	return b, nil
}

func (b *Bundle) readFrom(r io.Reader) error {
	var balance [8]byte
	_, err := io.ReadFull(r, balance[:])
	if err != nil {
		return errors.Wrap(err, "reading value balance")
	}
	b.valueBalance = Amount(int64(binary.LittleEndian.Uint64(balance[:])))
	if !b.valueBalance.valid() {
		return errors.WithDetailf(ErrRange, "value balance %d", int64(b.valueBalance))
	}

	nspends, err := compactsize.ReadUint(r)
	if err != nil {
		return errors.Wrap(err, "reading spend count")
	}
	if nspends > maxSpends {
		return errors.WithDetailf(ErrRange, "spend count %d exceeds %d", nspends, maxSpends)
	}
	for ; nspends > 0; nspends-- {
		var sd SpendDescription
		err = sd.readFrom(r)
		if err != nil {
			return errors.Wrapf(err, "reading spend %d", len(b.spends))
		}
		b.spends = append(b.spends, sd)
	}

	noutputs, err := compactsize.ReadUint(r)
	if err != nil {
		return errors.Wrap(err, "reading output count")
	}
	if noutputs > maxOutputs {
		return errors.WithDetailf(ErrRange, "output count %d exceeds %d", noutputs, maxOutputs)
	}
	for ; noutputs > 0; noutputs-- {
		var od OutputDescription
		err = od.readFrom(r)
		if err != nil {
			return errors.Wrapf(err, "reading output %d", len(b.outputs))
		}
		b.outputs = append(b.outputs, od)
	}

	// An encoding with no descriptors has a binding signature but
	// nothing it could authorize.
	if len(b.spends) == 0 && len(b.outputs) == 0 {
		return ErrEmptyBundle
	}

	_, err = io.ReadFull(r, b.bindingSig[:])
	if err != nil {
		return errors.Wrap(err, "reading binding signature")
	}
	return nil
}
