package blsvrf

import (
	"hash"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// transcript accumulates an ordered sequence of values and reduces their
// joint digest into the scalar field. Order matters: prover and verifiers
// must append identical values in an identical sequence, bit for bit.
type transcript struct {
	h hash.Hash
}

func (c *core) newTranscript(tag byte) *transcript {
	t := &transcript{h: c.Hasher()}
	t.h.Write([]byte{c.SuiteString, tag})
	return t
}

func (t *transcript) bytes(b []byte) *transcript {
	t.h.Write(b)
	return t
}

// point appends the two coordinates, each in the fixed 48-byte big-endian
// field encoding. The point at infinity contributes all-zero coordinates.
func (t *transcript) point(p *bls12381.G1Affine) *transcript {
	x := p.X.Bytes()
	y := p.Y.Bytes()
	t.h.Write(x[:])
	t.h.Write(y[:])
	return t
}

func (t *transcript) scalar(s *fr.Element) *transcript {
	b := s.Bytes()
	t.h.Write(b[:])
	return t
}

// scalarOut interprets the digest as a big-endian integer modulo r. The
// reduction keeps the negligible bias of folding 2^256 values onto r; both
// sides must compute the identical value, so no rejection sampling.
func (t *transcript) scalarOut() fr.Element {
	var e fr.Element
	e.SetBytes(t.h.Sum(nil))
	return e
}

// hashToField embeds the tagged digest of alpha into the low half of the base
// field encoding. The digest is 256 bits against a 381-bit modulus, so the
// embedding never reduces; config.go asserts that relation at start-up.
func (c *core) hashToField(alpha []byte) fp.Element {
	h := c.Hasher()
	h.Write([]byte{c.SuiteString, tagHashToCurve})
	h.Write(alpha)

	var u fp.Element
	u.SetBytes(h.Sum(nil))
	return u
}

// hashToCurve deterministically maps alpha to a point of the G1 prime-order
// subgroup through the total SSWU map with cofactor clearing. Identical
// input yields the identical point, across runs and implementations.
func (c *core) hashToCurve(alpha []byte) bls12381.G1Affine {
	u := c.hashToField(alpha)
	return bls12381.MapToG1(u)
}
