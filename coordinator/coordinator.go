// Package coordinator gathers authorization signatures for a bundle
// template from an external signing party and assembles the finished
// bundle.
//
// The coordinator never sees a spending key. It hands the signing
// party a sighash and a spend index and trusts it to return the
// matching signature bytes.
package coordinator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shieldpool/sapling"
	"github.com/shieldpool/sapling/errors"
)

// An Authorizer produces signatures over a bundle sighash. It is
// typically backed by one or more remote holders of spend
// authorization keys.
//
// Implementations must be safe for concurrent calls.
type Authorizer interface {
	// SignSpend returns the spend authorization signature for the
	// spend at the given index of the template being authorized.
	SignSpend(ctx context.Context, index int, sighash sapling.Byte32) ([]byte, error)

	// SignBinding returns the binding signature committing to the
	// bundle's value balance.
	SignBinding(ctx context.Context, sighash sapling.Byte32) ([]byte, error)
}

// Authorize collects a signature for every spend in tpl plus the
// binding signature, then assembles the finished bundle.
//
// Spend signatures are requested concurrently, one call per spend.
// If any request fails, the contexts of the remaining requests are
// canceled and the first failure is returned, identifying the spend
// index. The binding signature is requested only after every spend
// signature has arrived, since signing parties commit to a complete
// set of spends.
//
// Authorize does not verify the returned signatures.
func Authorize(ctx context.Context, tpl *sapling.BundleTemplate, sighash sapling.Byte32, auth Authorizer) (*sapling.Bundle, error) {
	if len(tpl.Spends) == 0 && len(tpl.Outputs) == 0 {
		return nil, sapling.ErrEmptyBundle
	}

	spends := make([]sapling.SpendDescription, len(tpl.Spends))
	g, gctx := errgroup.WithContext(ctx)
	for i := range tpl.Spends {
		i := i
		g.Go(func() error {
			sig, err := auth.SignSpend(gctx, i, sighash)
			if err != nil {
				return errors.Wrapf(err, "signing spend %d", i)
			}
			sd, err := tpl.Spends[i].WithSignature(sig)
			if err != nil {
				return errors.Wrapf(err, "signing spend %d", i)
			}
			spends[i] = *sd
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	sig, err := auth.SignBinding(ctx, sighash)
	if err != nil {
		return nil, errors.Wrap(err, "signing binding")
	}
	var bindingSig sapling.Byte64
	if len(sig) != len(bindingSig) {
		return nil, errors.WithDetailf(sapling.ErrBadLength, "binding signature is %d bytes, want %d", len(sig), len(bindingSig))
	}
	copy(bindingSig[:], sig)

	return sapling.Assemble(spends, tpl.Outputs, tpl.ValueBalance, bindingSig)
}
