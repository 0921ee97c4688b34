// Copyright (c) 2025 tessera.dev.
// Licensed under the MIT license.

// Package precompile models the minimal G1 primitive set of a constrained
// execution environment, with the call and encoding conventions of the
// EIP-2537 BLS12-381 precompiles: explicit byte buffers, 64-byte
// left-zero-padded field elements and 128-byte two-coordinate points.
package precompile

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// FpSize is the width of a padded base field element.
	FpSize = 64

	// PointSize is the width of a wide two-coordinate point, X || Y.
	PointSize = 2 * FpSize

	// ScalarSize is the width of a big-endian scalar.
	ScalarSize = fr.Bytes

	// pad is the count of zero bytes ahead of every 48-byte coordinate.
	pad = FpSize - fp.Bytes
)

var (
	// ErrLength reports a buffer that does not match its required width.
	// Primitives never pad or truncate on behalf of the caller.
	ErrLength = errors.New("precompile: invalid encoding length")

	// ErrEncoding reports nonzero padding or a non-canonical field element
	// or scalar.
	ErrEncoding = errors.New("precompile: non-canonical encoding")

	// ErrPoint reports a point that is not on the curve or, where a
	// primitive requires it, not in the prime-order subgroup.
	ErrPoint = errors.New("precompile: malformed point")
)

// EncodeFp returns the 64-byte padded encoding of e.
func EncodeFp(e *fp.Element) []byte {
	out := make([]byte, FpSize)
	b := e.Bytes()
	copy(out[pad:], b[:])
	return out
}

func decodeFp(buf []byte) (fp.Element, error) {
	var e fp.Element
	if len(buf) != FpSize {
		return e, ErrLength
	}
	for _, b := range buf[:pad] {
		if b != 0 {
			return e, ErrEncoding
		}
	}
	if err := e.SetBytesCanonical(buf[pad:]); err != nil {
		return e, ErrEncoding
	}
	return e, nil
}

// EncodeG1 returns the 128-byte wide encoding of p. The point at infinity
// encodes as all zeros.
func EncodeG1(p *bls12381.G1Affine) []byte {
	out := make([]byte, PointSize)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[pad:FpSize], x[:])
	copy(out[FpSize+pad:], y[:])
	return out
}

// DecodeG1 parses a wide point encoding and checks the point is on the
// curve. Subgroup membership is checked separately by the primitives that
// require it.
func DecodeG1(buf []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if len(buf) != PointSize {
		return p, ErrLength
	}
	x, err := decodeFp(buf[:FpSize])
	if err != nil {
		return p, err
	}
	y, err := decodeFp(buf[FpSize:])
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	if p.IsInfinity() {
		return p, nil
	}
	if !p.IsOnCurve() {
		return p, ErrPoint
	}
	return p, nil
}

// WidenCompact re-encodes a compact 48-byte point into the wide layout.
// Every point crossing into the primitive environment goes through this
// conversion; the compact form is never handed to a primitive directly.
func WidenCompact(compact []byte) ([]byte, error) {
	if len(compact) != bls12381.SizeOfG1AffineCompressed {
		return nil, ErrLength
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(compact); err != nil {
		return nil, ErrPoint
	}
	return EncodeG1(&p), nil
}

func decodeScalar(buf []byte) (fr.Element, error) {
	var s fr.Element
	if len(buf) != ScalarSize {
		return s, ErrLength
	}
	if err := s.SetBytesCanonical(buf); err != nil {
		return s, ErrEncoding
	}
	return s, nil
}
