// Package blsvrf implements a verifiable random function over the BLS12-381
// G1 group. A prover holding a secret key derives a pseudorandom output tied
// to an input, together with a compact proof; any holder of the public key
// can check the proof and, only on success, recover the output.
package blsvrf

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrInvalidProof reports a challenge mismatch during verification. It is the
// expected outcome for an invalid proof, not a system fault.
var ErrInvalidProof = errors.New("invalid vrf proof")

// VRF is the prover/verifier pair of a suite. Methods are stateless and safe
// for concurrent use; the only shared resource is the system CSPRNG.
type VRF interface {
	// Prove computes the output beta for alpha under sk and a proof pi that
	// beta was derived correctly.
	Prove(sk *SecretKey, alpha []byte) (beta, pi []byte, err error)

	// Verify checks pi against pk and alpha. It returns beta only on
	// success and ErrInvalidProof when the proof does not check out.
	Verify(pk *PublicKey, alpha, pi []byte) (beta []byte, err error)
}

var bls12381Sha256Cfg = Config{
	SuiteString: 0xb1,
	Hasher:      sha256.New,
}

// Bls12381Sha256 is the VRF suite over the BLS12-381 G1 group with SHA-256.
var Bls12381Sha256 VRF = &vrf{bls12381Sha256Cfg}

type vrf struct {
	cfg Config
}

func (v *vrf) Prove(sk *SecretKey, alpha []byte) (beta, pi []byte, err error) {
	// The nonce is drawn fresh per call. Reusing it across two inputs, or
	// letting an observer predict it, surrenders the secret key.
	var k fr.Element
	if _, err := k.SetRandom(); err != nil {
		return nil, nil, fmt.Errorf("entropy source unavailable: %w", err)
	}
	c := &core{Config: &v.cfg}
	return c.prove(sk, alpha, &k)
}

func (v *vrf) Verify(pk *PublicKey, alpha, pi []byte) (beta []byte, err error) {
	c := &core{Config: &v.cfg}
	return c.verify(pk, alpha, pi)
}

// ProveWithNonce runs the proving algorithm of the Bls12381Sha256 suite with
// a caller-chosen nonce, given as a canonical 32-byte big-endian scalar. It
// exists solely for deterministic reproducibility in tests.
//
// Security contract: a nonce must never repeat across two different
// (secret key, input) pairs and must never be derivable by an observer.
// Either condition surrenders the secret key through two linear equations
// over the transcripts. Production call sites must use Prove, which draws
// the nonce from the system CSPRNG.
func ProveWithNonce(sk *SecretKey, alpha, nonce []byte) (beta, pi []byte, err error) {
	if len(nonce) != ScalarSize {
		return nil, nil, errors.New("invalid nonce length")
	}
	var k fr.Element
	if err := k.SetBytesCanonical(nonce); err != nil {
		return nil, nil, fmt.Errorf("invalid nonce: %w", err)
	}
	c := &core{Config: &bls12381Sha256Cfg}
	return c.prove(sk, alpha, &k)
}
