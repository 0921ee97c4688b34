// Copyright (c) 2025 tessera.dev.
// Licensed under the MIT license.

package blsvrf

import (
	"bytes"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestGenerateKey(t *testing.T) {
	sk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	// pk must equal sk*B, recomputed independently
	d := new(big.Int).SetBytes(sk.Bytes())
	if d.Sign() == 0 {
		t.Fatal("generated a zero scalar")
	}
	var want bls12381.G1Affine
	want.ScalarMultiplicationBase(d)
	if !want.Equal(&sk.pk.p) {
		t.Fatal("public key does not match sk*B")
	}

	sk2, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(sk.Bytes(), sk2.Bytes()) {
		t.Fatal("two generated keys are identical")
	}
}

func TestNewSecretKey(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		sk, err := GenerateKey()
		if err != nil {
			t.Fatal(err)
		}
		sk2, err := NewSecretKey(sk.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(sk.Public().Bytes(), sk2.Public().Bytes()) {
			t.Fatal("rebuilt key has a different public key")
		}
	})

	t.Run("rejects zero", func(t *testing.T) {
		if _, err := NewSecretKey(make([]byte, ScalarSize)); err == nil {
			t.Fatal("zero scalar accepted")
		}
	})

	t.Run("rejects out of range", func(t *testing.T) {
		b := make([]byte, ScalarSize)
		fr.Modulus().FillBytes(b)
		if _, err := NewSecretKey(b); err == nil {
			t.Fatal("scalar >= r accepted")
		}
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		if _, err := NewSecretKey([]byte{1, 2, 3}); err == nil {
			t.Fatal("short scalar accepted")
		}
	})
}

func TestPublicKeyCodec(t *testing.T) {
	sk, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	b := sk.Public().Bytes()
	if len(b) != PointSize {
		t.Fatalf("public key length = %d, want %d", len(b), PointSize)
	}
	pk, err := NewPublicKey(b)
	if err != nil {
		t.Fatal(err)
	}
	if !pk.p.Equal(&sk.pk.p) {
		t.Fatal("decoded public key differs")
	}

	if _, err := NewPublicKey(b[:PointSize-1]); err == nil {
		t.Fatal("short encoding accepted")
	}
	if _, err := NewPublicKey(bytes.Repeat([]byte{0xff}, PointSize)); err == nil {
		t.Fatal("malformed encoding accepted")
	}
}
