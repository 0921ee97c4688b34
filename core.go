package blsvrf

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// ScalarSize is the width of the canonical big-endian scalar encoding.
	ScalarSize = fr.Bytes

	// PointSize is the width of the compact point encoding used for proof
	// transport and public keys.
	PointSize = bls12381.SizeOfG1AffineCompressed

	// ProofSize is the width of an encoded proof: c || s || gamma.
	ProofSize = 2*ScalarSize + PointSize

	// OutputSize is the width of the VRF output beta.
	OutputSize = sha256.Size
)

// Domain separation tags, one per hash role of the suite.
const (
	tagHashToCurve = 0x01
	tagChallenge   = 0x02
	tagOutput      = 0x03
)

type proof struct {
	c, s  fr.Element
	gamma bls12381.G1Affine
}

type core struct {
	*Config
}

// challenge computes the protocol transcript hash. Argument order is fixed;
// the prover and both verifiers must pass the same sequence.
func (c *core) challenge(alpha []byte, pk, gamma, u, v *bls12381.G1Affine) fr.Element {
	return c.newTranscript(tagChallenge).
		bytes(alpha).
		point(pk).
		point(gamma).
		point(u).
		point(v).
		scalarOut()
}

// gammaToHash derives the output beta from gamma and the input. It is called
// by the prover and, on the verifying side, only after the proof checked out.
func (c *core) gammaToHash(gamma *bls12381.G1Affine, alpha []byte) []byte {
	h := c.Hasher()
	gb := gamma.Bytes()
	h.Write([]byte{c.SuiteString, tagOutput})
	h.Write(gb[:])
	h.Write(alpha)
	return h.Sum(nil)
}

func (c *core) prove(sk *SecretKey, alpha []byte, k *fr.Element) (beta, pi []byte, err error) {
	var kb, db big.Int
	k.BigInt(&kb)
	sk.d.BigInt(&db)

	// step 1: map the input onto the curve
	h := c.hashToCurve(alpha)

	// step 2: gamma = x * H
	var gamma bls12381.G1Affine
	gamma.ScalarMultiplication(&h, &db)

	// step 3: u = k * B, v = k * H
	var u, v bls12381.G1Affine
	u.ScalarMultiplicationBase(&kb)
	v.ScalarMultiplication(&h, &kb)

	// step 4: c = hash of the transcript
	ch := c.challenge(alpha, &sk.pk.p, &gamma, &u, &v)

	// step 5: s = (k + c*x) mod r
	var s fr.Element
	s.Mul(&ch, &sk.d).Add(&s, k)

	// step 6: encode (c, s, gamma)
	pi = c.encodeProof(&proof{c: ch, s: s, gamma: gamma})
	beta = c.gammaToHash(&gamma, alpha)
	return
}

func (c *core) verify(pk *PublicKey, alpha, pi []byte) (beta []byte, err error) {
	p, err := c.decodeProof(pi)
	if err != nil {
		return nil, err
	}

	// the subtrahend's scalar is negated modulo r, never the point
	var negC fr.Element
	negC.Neg(&p.c)

	var sb, nb big.Int
	p.s.BigInt(&sb)
	negC.BigInt(&nb)

	// u = s*B - c*Y
	var sB, cY, u bls12381.G1Affine
	sB.ScalarMultiplicationBase(&sb)
	cY.ScalarMultiplication(&pk.p, &nb)
	u.Add(&sB, &cY)

	// v = s*H - c*gamma
	hp := c.hashToCurve(alpha)
	var sH, cG, v bls12381.G1Affine
	sH.ScalarMultiplication(&hp, &sb)
	cG.ScalarMultiplication(&p.gamma, &nb)
	v.Add(&sH, &cG)

	ch := c.challenge(alpha, &pk.p, &p.gamma, &u, &v)
	if !ch.Equal(&p.c) {
		return nil, ErrInvalidProof
	}
	return c.gammaToHash(&p.gamma, alpha), nil
}

func (c *core) encodeProof(p *proof) []byte {
	cb := p.c.Bytes()
	sb := p.s.Bytes()
	gb := p.gamma.Bytes()

	out := make([]byte, 0, ProofSize)
	out = append(out, cb[:]...)
	out = append(out, sb[:]...)
	out = append(out, gb[:]...)
	return out
}

func (c *core) decodeProof(pi []byte) (*proof, error) {
	if len(pi) != ProofSize {
		return nil, errors.New("invalid proof length")
	}
	var p proof
	if err := p.c.SetBytesCanonical(pi[:ScalarSize]); err != nil {
		return nil, errors.New("invalid proof: challenge out of range")
	}
	if err := p.s.SetBytesCanonical(pi[ScalarSize : 2*ScalarSize]); err != nil {
		return nil, errors.New("invalid proof: response out of range")
	}
	// SetBytes rejects points off the curve or outside the subgroup
	if _, err := p.gamma.SetBytes(pi[2*ScalarSize:]); err != nil {
		return nil, fmt.Errorf("invalid proof: %w", err)
	}
	return &p, nil
}
