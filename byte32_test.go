package sapling

import (
	"encoding"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shieldpool/sapling/errors"
)

func TestByte32Text(t *testing.T) {
	want := strings.Repeat("42", 32)

	var b32 Byte32
	err := b32.UnmarshalText([]byte(want))
	if err != nil {
		t.Fatal(err)
	}
	for i := range b32 {
		if b32[i] != 0x42 {
			t.Fatalf("b32[%d] = %x want 42", i, b32[i])
		}
	}
	if b32.String() != want {
		t.Errorf("String() = %s want %s", b32.String(), want)
	}
	b, err := b32.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != want {
		t.Errorf("MarshalText() = %s want %s", b, want)
	}
}

func TestByte32BadText(t *testing.T) {
	cases := []string{
		"",
		"42",
		strings.Repeat("42", 31),
		strings.Repeat("42", 33),
	}
	for _, test := range cases {
		var b32 Byte32
		err := b32.UnmarshalText([]byte(test))
		if errors.Root(err) != ErrBadLength {
			t.Errorf("UnmarshalText(%q) err = %v want %v", test, err, ErrBadLength)
		}
	}

	var b32 Byte32
	err := b32.UnmarshalText([]byte(strings.Repeat("4g", 32)))
	if err == nil {
		t.Error("expected error for non-hex input")
	}
}

func TestByte32JSON(t *testing.T) {
	var b32 Byte32
	err := json.Unmarshal([]byte("null"), &b32)
	if err != nil {
		t.Fatal(err)
	}
	if b32 != (Byte32{}) {
		t.Errorf("unmarshaled null = %s want zero", b32)
	}

	err = json.Unmarshal([]byte(`"`+strings.Repeat("ab", 32)+`"`), &b32)
	if err != nil {
		t.Fatal(err)
	}
	if b32[0] != 0xab || b32[31] != 0xab {
		t.Errorf("unmarshaled = %s", b32)
	}

	err = json.Unmarshal([]byte("17"), &b32)
	if err == nil {
		t.Error("expected error for non-string JSON")
	}
}

func TestFixedBytesText(t *testing.T) {
	type textCodec interface {
		encoding.TextMarshaler
		encoding.TextUnmarshaler
	}

	cases := []struct {
		v    textCodec
		size int
	}{
		{new(Byte64), 64},
		{new(Proof), proofSize},
		{new(NoteCiphertext), noteCiphertextSize},
		{new(OutCiphertext), outCiphertextSize},
	}

	for _, test := range cases {
		want := strings.Repeat("cd", test.size)
		err := test.v.UnmarshalText([]byte(want))
		if err != nil {
			t.Errorf("%T: unexpected err %v", test.v, err)
			continue
		}
		got, err := test.v.MarshalText()
		if err != nil {
			t.Errorf("%T: unexpected err %v", test.v, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%T: MarshalText() = %s want %s", test.v, got, want)
		}

		err = test.v.UnmarshalText([]byte(want[2:]))
		if errors.Root(err) != ErrBadLength {
			t.Errorf("%T: short input err = %v want %v", test.v, err, ErrBadLength)
		}
	}
}
