// Copyright (c) 2025 tessera.dev.
// Licensed under the MIT license.

package precompile

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1 is the complete primitive set available inside the constrained
// environment: point addition, two-term multi-scalar multiplication and the
// field-to-curve map. There is no point negation and no single-point scalar
// multiplication. Implementations validate exact buffer widths on every
// call; a mismatch is a caller error, never repaired by the primitive.
type G1 interface {
	// Add returns a+b. Operands are 128-byte wide points on the curve;
	// subgroup membership is not required, matching the precompile
	// contract for addition.
	Add(a, b []byte) ([]byte, error)

	// MSM2 returns s1*p1 + s2*p2 in one call. Points must lie in the
	// prime-order subgroup; scalars are canonical 32-byte big-endian.
	MSM2(p1, s1, p2, s2 []byte) ([]byte, error)

	// MapFpToG1 applies the total field-to-curve map to a 64-byte padded
	// field element and clears the cofactor, so the result lies in the
	// prime-order subgroup.
	MapFpToG1(e []byte) ([]byte, error)
}

// NewG1 returns the host-side implementation of the primitive set.
func NewG1() G1 {
	return hostG1{}
}

type hostG1 struct{}

func (hostG1) Add(a, b []byte) ([]byte, error) {
	pa, err := DecodeG1(a)
	if err != nil {
		return nil, err
	}
	pb, err := DecodeG1(b)
	if err != nil {
		return nil, err
	}
	var sum bls12381.G1Affine
	sum.Add(&pa, &pb)
	return EncodeG1(&sum), nil
}

func (hostG1) MSM2(p1, s1, p2, s2 []byte) ([]byte, error) {
	pts := make([]bls12381.G1Affine, 2)
	var err error
	if pts[0], err = DecodeG1(p1); err != nil {
		return nil, err
	}
	if pts[1], err = DecodeG1(p2); err != nil {
		return nil, err
	}
	for i := range pts {
		if !pts[i].IsInSubGroup() {
			return nil, ErrPoint
		}
	}
	scalars := make([]fr.Element, 2)
	if scalars[0], err = decodeScalar(s1); err != nil {
		return nil, err
	}
	if scalars[1], err = decodeScalar(s2); err != nil {
		return nil, err
	}

	var res bls12381.G1Affine
	if _, err := res.MultiExp(pts, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return EncodeG1(&res), nil
}

func (hostG1) MapFpToG1(e []byte) ([]byte, error) {
	u, err := decodeFp(e)
	if err != nil {
		return nil, err
	}
	p := bls12381.MapToG1(u)
	return EncodeG1(&p), nil
}
