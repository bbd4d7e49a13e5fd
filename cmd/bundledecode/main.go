// Command bundledecode reads a hex-encoded shielded bundle and prints
// the decoded bundle.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shieldpool/sapling"
)

const help = `Usage: bundledecode <bundle.hex

Command bundledecode reads a hex-encoded bundle from stdin, decodes
it, and prints its spends digest, its outputs digest, and its JSON
representation to stdout.

To decode a bundle from the pasteboard on Mac OS X,

	pbpaste|bundledecode

Exit code 0 indicates success.
Exit code 1 indicates an invalid bundle.
Exit code 2 indicates a usage or I/O error.
`

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(2)
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, help)
	}
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprint(os.Stderr, help)
		os.Exit(2)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("%v\n", err)
	}

	var b sapling.Bundle
	err = b.UnmarshalText(bytes.TrimSpace(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid bundle:", err)
		os.Exit(1)
	}

	fmt.Printf("Spends Digest: %s\n", b.SpendsDigest())
	fmt.Printf("Outputs Digest: %s\n", b.OutputsDigest())

	j, err := json.MarshalIndent(&b, "", "  ")
	if err != nil {
		fatalf("error json-marshaling: %s\n", err)
	}
	fmt.Println(string(j))
}
