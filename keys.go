// Copyright (c) 2025 tessera.dev.
// Licensed under the MIT license.

package blsvrf

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey is a scalar in [1, r). It stays on the proving side and never
// crosses the verification boundary.
type SecretKey struct {
	d  fr.Element
	pk PublicKey
}

// PublicKey is the prover's commitment pk = sk*B, immutable once derived.
type PublicKey struct {
	p bls12381.G1Affine
}

// GenerateKey samples a fresh key pair from the system CSPRNG. The zero
// scalar is degenerate and resampled. The only failure mode is an unavailable
// entropy source, in which case no partial key is returned.
func GenerateKey() (*SecretKey, error) {
	var sk SecretKey
	for {
		if _, err := sk.d.SetRandom(); err != nil {
			return nil, fmt.Errorf("entropy source unavailable: %w", err)
		}
		if !sk.d.IsZero() {
			break
		}
	}
	sk.derivePublic()
	return &sk, nil
}

// NewSecretKey builds a key pair from a canonical 32-byte big-endian scalar
// in [1, r). It exists for deterministic derivation and tests; fresh keys
// come from GenerateKey.
func NewSecretKey(b []byte) (*SecretKey, error) {
	var sk SecretKey
	if len(b) != ScalarSize {
		return nil, errors.New("invalid secret key length")
	}
	if err := sk.d.SetBytesCanonical(b); err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}
	if sk.d.IsZero() {
		return nil, errors.New("invalid secret key: scalar is zero")
	}
	sk.derivePublic()
	return &sk, nil
}

func (sk *SecretKey) derivePublic() {
	var d big.Int
	sk.pk.p.ScalarMultiplicationBase(sk.d.BigInt(&d))
}

// Public returns the corresponding public key.
func (sk *SecretKey) Public() *PublicKey {
	return &sk.pk
}

// Bytes returns the canonical 32-byte big-endian scalar encoding.
func (sk *SecretKey) Bytes() []byte {
	b := sk.d.Bytes()
	return b[:]
}

// NewPublicKey decodes a compact 48-byte point encoding. Points off the curve
// or outside the prime-order subgroup are rejected.
func NewPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PointSize {
		return nil, errors.New("invalid public key length")
	}
	var pk PublicKey
	if _, err := pk.p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	return &pk, nil
}

// Bytes returns the compact 48-byte point encoding.
func (pk *PublicKey) Bytes() []byte {
	b := pk.p.Bytes()
	return b[:]
}
