// Copyright (c) 2025 tessera.dev.
// Licensed under the MIT license.

package blsvrf

import (
	"crypto/sha256"
	"hash"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Config holds the suite parameters shared by the prover and both verifiers.
// A Config is immutable after construction; suites are package-level values.
type Config struct {
	// SuiteString is the domain separation tag prefixed to every hash
	// invocation of the suite.
	SuiteString byte

	// Hasher constructs the suite's 256-bit hash.
	Hasher func() hash.Hash
}

// g1Gen is the canonical G1 base point, fixed at process start and never
// mutated afterwards.
var g1Gen bls12381.G1Affine

func init() {
	_, _, g1Gen, _ = bls12381.Generators()

	// The digest of the shipped suite embeds into an fp element without
	// reduction only while the hash width stays strictly below the field
	// modulus bit length. Anyone substituting the hash or the curve must
	// keep this relation intact.
	if sha256.Size*8 >= fp.Bits {
		panic("blsvrf: hash width must be smaller than the base field bit length")
	}
}
