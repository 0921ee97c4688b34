package blsvrf

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/tessera-crypto/go-blsvrf/precompile"
)

// PrecompileVerifier reaches the same accept/reject decisions as the suite's
// Verify while restricted to the precompile primitive set: point addition,
// two-term multi-scalar multiplication and map-fp-to-G1. Each subtraction
// A - c*B of the reference algebra becomes one MSM2 call with the
// subtrahend's scalar negated modulo r; points are never negated.
type PrecompileVerifier struct {
	cfg Config
	ops precompile.G1
}

// NewPrecompileVerifier returns a verifier for the Bls12381Sha256 suite that
// performs every group operation through ops.
func NewPrecompileVerifier(ops precompile.G1) *PrecompileVerifier {
	return &PrecompileVerifier{cfg: bls12381Sha256Cfg, ops: ops}
}

// Verify checks pi against pk and alpha. The decision and the returned beta
// are bit-identical to the suite's Verify for every input.
func (pv *PrecompileVerifier) Verify(pk *PublicKey, alpha, pi []byte) (beta []byte, err error) {
	c := &core{Config: &pv.cfg}
	p, err := c.decodeProof(pi)
	if err != nil {
		return nil, err
	}

	// every point is re-encoded into the wide two-coordinate layout before
	// it crosses into the primitive environment
	base, err := precompile.WidenCompact(baseCompact())
	if err != nil {
		return nil, err
	}
	pkWide, err := precompile.WidenCompact(pk.Bytes())
	if err != nil {
		return nil, err
	}
	gb := p.gamma.Bytes()
	gammaWide, err := precompile.WidenCompact(gb[:])
	if err != nil {
		return nil, err
	}

	// H = map(hash embedded into the low half of a field element)
	fe := c.hashToField(alpha)
	hWide, err := pv.ops.MapFpToG1(precompile.EncodeFp(&fe))
	if err != nil {
		return nil, err
	}

	var negC fr.Element
	negC.Neg(&p.c)
	sb := p.s.Bytes()
	nb := negC.Bytes()

	// u = s*B - c*Y and v = s*H - c*gamma, each as one two-term MSM
	uWide, err := pv.ops.MSM2(base, sb[:], pkWide, nb[:])
	if err != nil {
		return nil, err
	}
	vWide, err := pv.ops.MSM2(hWide, sb[:], gammaWide, nb[:])
	if err != nil {
		return nil, err
	}

	u, err := precompile.DecodeG1(uWide)
	if err != nil {
		return nil, err
	}
	v, err := precompile.DecodeG1(vWide)
	if err != nil {
		return nil, err
	}

	ch := c.challenge(alpha, &pk.p, &p.gamma, &u, &v)
	if !ch.Equal(&p.c) {
		return nil, ErrInvalidProof
	}
	return c.gammaToHash(&p.gamma, alpha), nil
}

func baseCompact() []byte {
	b := g1Gen.Bytes()
	return b[:]
}
