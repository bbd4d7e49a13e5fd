/*
Package sapling assembles shielded transaction bundles from
externally produced cryptographic material and encodes them in the
version 4 shielded wire format.

The package is the join point between a threshold signing protocol
and the network: zero-knowledge proofs, randomized verification keys,
and signatures arrive from outside as opaque fixed-size byte values,
and the package's job is to put them together in a way that cannot be
confused for authorized when any signature slot is unpopulated.

Two shapes make that distinction structural. A BundleTemplate, and the
SpendTemplate values inside it, have no signature fields at all; they
are what exists while signing sessions are still in flight. A Bundle
holds completed descriptors and a binding signature, and the only
ways to obtain one are Assemble and the wire decoder. There is no
operation that turns a Bundle back into a template.

Nothing in this package verifies a signature or a proof. Constructors
check field lengths only; the decoder checks format only. Whether the
assembled bytes satisfy consensus is decided by the network that
receives them.
*/
package sapling
