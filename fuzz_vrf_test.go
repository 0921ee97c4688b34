package blsvrf

import (
	"bytes"
	"testing"
)

func FuzzDecodeProof(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add(make([]byte, ProofSize))

	f.Fuzz(func(t *testing.T, pi []byte) {
		c := &core{Config: &bls12381Sha256Cfg}

		// Ensure no panic occurs during decoding
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("decodeProof panicked: %v", r)
			}
		}()

		_, _ = c.decodeProof(pi)
	})
}

func FuzzProveVerify(f *testing.F) {
	f.Add([]byte("Hello Tessera"), []byte{1})
	f.Add([]byte{0x00, 0x01, 0x02}, []byte{0xff, 0x00, 0xaa})

	f.Fuzz(func(t *testing.T, alpha []byte, skSeed []byte) {
		sk := deriveKey(skSeed)
		if sk == nil {
			t.Skip()
		}

		beta1, pi, err := Bls12381Sha256.Prove(sk, alpha)
		if err != nil {
			t.Fatalf("Prove failed: %v", err)
		}

		beta2, err := Bls12381Sha256.Verify(sk.Public(), alpha, pi)
		if err != nil {
			t.Fatalf("Verify failed for self-produced proof: %v", err)
		}
		if !bytes.Equal(beta1, beta2) {
			t.Fatalf("beta mismatch: got %x vs %x", beta1, beta2)
		}

		// Negative check: mutate the proof slightly and expect verification to fail
		mutated := make([]byte, len(pi))
		copy(mutated, pi)
		mutated[len(mutated)-1] ^= 0x01
		if _, err := Bls12381Sha256.Verify(sk.Public(), alpha, mutated); err == nil {
			t.Fatalf("mutated proof unexpectedly verified")
		}
	})
}
