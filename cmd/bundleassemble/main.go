// Command bundleassemble assembles signed spend and output
// descriptions into a shielded bundle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shieldpool/sapling"
	saplingjson "github.com/shieldpool/sapling/encoding/json"
	"github.com/shieldpool/sapling/errors"
	"github.com/shieldpool/sapling/log"
)

const help = `Usage: bundleassemble [-v] <manifest.json

Command bundleassemble reads a JSON manifest of signed spend and
output descriptions from stdin, assembles them into a bundle, and
prints the hex encoding of the bundle to stdout.

All manifest fields except value_balance are hex strings:

	{
		"value_balance": -1000,
		"spends": [{"cv": ..., "anchor": ..., "nullifier": ...,
		            "rk": ..., "zkproof": ..., "spend_auth_sig": ...}],
		"outputs": [{"cv": ..., "cmu": ..., "ephemeral_key": ...,
		             "enc_ciphertext": ..., "out_ciphertext": ...,
		             "zkproof": ...}],
		"binding_sig": ...
	}

Exit code 0 indicates success.
Exit code 1 indicates an invalid manifest.
Exit code 2 indicates a usage or I/O error.

Flags:
`

var flagV = flag.Bool("v", false, "log assembly progress to stderr")

type spendManifest struct {
	CV           saplingjson.HexBytes `json:"cv"`
	Anchor       saplingjson.HexBytes `json:"anchor"`
	Nullifier    saplingjson.HexBytes `json:"nullifier"`
	Rk           saplingjson.HexBytes `json:"rk"`
	Zkproof      saplingjson.HexBytes `json:"zkproof"`
	SpendAuthSig saplingjson.HexBytes `json:"spend_auth_sig"`
}

type outputManifest struct {
	CV            saplingjson.HexBytes `json:"cv"`
	Cmu           saplingjson.HexBytes `json:"cmu"`
	EphemeralKey  saplingjson.HexBytes `json:"ephemeral_key"`
	EncCiphertext saplingjson.HexBytes `json:"enc_ciphertext"`
	OutCiphertext saplingjson.HexBytes `json:"out_ciphertext"`
	Zkproof       saplingjson.HexBytes `json:"zkproof"`
}

type manifest struct {
	Spends       []spendManifest      `json:"spends"`
	Outputs      []outputManifest     `json:"outputs"`
	ValueBalance int64                `json:"value_balance"`
	BindingSig   saplingjson.HexBytes `json:"binding_sig"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprint(os.Stderr, help)
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !*flagV {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var m manifest
	err = json.Unmarshal(data, &m)
	if err != nil {
		fatal(err)
	}
	log.Write(ctx, "spends", len(m.Spends), "outputs", len(m.Outputs), "value_balance", m.ValueBalance)

	spends := make([]sapling.SpendDescription, 0, len(m.Spends))
	for i, s := range m.Spends {
		sd, err := sapling.NewSpendDescription(s.CV, s.Anchor, s.Nullifier, s.Rk, s.Zkproof, s.SpendAuthSig)
		if err != nil {
			fatal(errors.Wrapf(err, "spend %d", i))
		}
		spends = append(spends, *sd)
	}
	outputs := make([]sapling.OutputDescription, 0, len(m.Outputs))
	for i, o := range m.Outputs {
		od, err := sapling.NewOutputDescription(o.CV, o.Cmu, o.EphemeralKey, o.EncCiphertext, o.OutCiphertext, o.Zkproof)
		if err != nil {
			fatal(errors.Wrapf(err, "output %d", i))
		}
		outputs = append(outputs, *od)
	}

	balance, err := sapling.NewAmount(m.ValueBalance)
	if err != nil {
		fatal(err)
	}
	var bindingSig sapling.Byte64
	if len(m.BindingSig) != len(bindingSig) {
		fatal(errors.WithDetailf(sapling.ErrBadLength, "binding signature is %d bytes, want %d", len(m.BindingSig), len(bindingSig)))
	}
	copy(bindingSig[:], m.BindingSig)

	b, err := sapling.Assemble(spends, outputs, balance, bindingSig)
	if err != nil {
		fatal(err)
	}

	enc, err := b.MarshalText()
	if err != nil {
		fatal(err)
	}
	if _, err := sapling.DecodeBundleBytes(b.Bytes()); err != nil {
		fatal(err)
	}
	log.Write(ctx, log.KeyMessage, "assembled",
		"bytes", len(b.Bytes()),
		"spends_digest", b.SpendsDigest(),
		"outputs_digest", b.OutputsDigest(),
	)

	fmt.Println(string(enc))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "invalid manifest:", err)
	os.Exit(1)
}
