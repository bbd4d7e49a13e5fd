package sapling

import (
	"hash"

	blake2b "github.com/minio/blake2b-simd"
)

// Personalization strings for the BLAKE2b-256 digests over bundle
// components. Each digest domain gets its own 16-byte string.
const (
	spendsDigestPerson  = "ZcashSSpendsHash"
	outputsDigestPerson = "ZcashSOutputHash"
)

func newDigestHash(person string) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(person),
	})
	if err != nil {
		panic(err) // fixed configs cannot fail
	}
	return h
}

// SpendsDigest returns the digest committing to every spend in the
// list: for each spend, cv, anchor, nullifier, rk, and zkproof, in
// sequence order. Spend authorization signatures never enter the
// digest, which is why it is computable before signing begins.
// The digest of an empty list is all zeros.
func SpendsDigest(spends []SpendTemplate) (digest Byte32) {
	if len(spends) == 0 {
		return digest
	}
	h := newDigestHash(spendsDigestPerson)
	for i := range spends {
		spends[i].writeTo(h)
	}
	h.Sum(digest[:0])
	return digest
}

// OutputsDigest returns the digest committing to every output in the
// list, each in its full serialized form, in sequence order.
// The digest of an empty list is all zeros.
func OutputsDigest(outputs []OutputDescription) (digest Byte32) {
	if len(outputs) == 0 {
		return digest
	}
	h := newDigestHash(outputsDigestPerson)
	for i := range outputs {
		outputs[i].writeTo(h)
	}
	h.Sum(digest[:0])
	return digest
}

// SpendsDigest returns the digest over the template's spends.
func (t *BundleTemplate) SpendsDigest() Byte32 {
	return SpendsDigest(t.Spends)
}

// OutputsDigest returns the digest over the template's outputs.
func (t *BundleTemplate) OutputsDigest() Byte32 {
	return OutputsDigest(t.Outputs)
}

// SpendsDigest returns the digest over the bundle's spends. It is
// identical to the digest of the templates the spends were built
// from; signatures are excluded.
func (b *Bundle) SpendsDigest() (digest Byte32) {
	if len(b.spends) == 0 {
		return digest
	}
	h := newDigestHash(spendsDigestPerson)
	for i := range b.spends {
		b.spends[i].SpendTemplate.writeTo(h)
	}
	h.Sum(digest[:0])
	return digest
}

// OutputsDigest returns the digest over the bundle's outputs.
func (b *Bundle) OutputsDigest() Byte32 {
	return OutputsDigest(b.outputs)
}
