package rsa

import (
	"math/big"

	"github.com/davidbarton/ring/lib/crypto/types"
	"github.com/davidbarton/ring/lib/untrusted"
)

// Modulus bit-length bounds. ModulusMinBits is the permissive verification
// floor kept for interoperability with legacy keys; signing contexts
// enforce ModulusSigningMinBits. ModulusMaxBits caps the work a hostile key
// can demand from big-integer arithmetic.
const (
	ModulusMinBits        = 1024
	ModulusSigningMinBits = 2048
	ModulusMaxBits        = 8192
)

// Modulus is the public modulus `n` of an RSA key, validated at
// construction: odd, minimally encoded, with a bit length inside the
// caller's bounds.
type Modulus struct {
	value *big.Int
	bits  int
}

// ModulusFromBEBytes decodes a big-endian, minimally-encoded unsigned
// integer from untrusted input and validates it as a public modulus whose
// bit length lies within [minBits, maxBits].
func ModulusFromBEBytes(input untrusted.Input, minBits, maxBits int) (Modulus, error) {
	// Length check before any allocation, mirroring the exponent decode.
	if input.Len() > (maxBits+7)/8 {
		return Modulus{}, types.KeyRejectedTooLarge()
	}
	buf := make([]byte, 0, input.Len())
	err := input.ReadAll(types.KeyRejectedInvalidEncoding(), func(r *untrusted.Reader) error {
		if r.Peek(0x00) {
			return types.KeyRejectedInvalidEncoding()
		}
		for !r.AtEnd() {
			b, err := r.ReadByte()
			if err != nil {
				return types.KeyRejectedInvalidEncoding()
			}
			buf = append(buf, b)
		}
		return nil
	})
	if err != nil {
		return Modulus{}, err
	}
	value := new(big.Int).SetBytes(buf)
	bits := value.BitLen()
	if bits < minBits {
		return Modulus{}, types.KeyRejectedTooSmall()
	}
	if value.Bit(0) != 1 {
		return Modulus{}, types.KeyRejectedInvalidComponent()
	}
	if bits > maxBits {
		return Modulus{}, types.KeyRejectedTooLarge()
	}
	return Modulus{value: value, bits: bits}, nil
}

// BitLen returns the bit length of the modulus.
func (m Modulus) BitLen() int {
	return m.bits
}

// Value returns a copy of the modulus, so callers cannot mutate the
// validated value through the shared big.Int.
func (m Modulus) Value() *big.Int {
	return new(big.Int).Set(m.value)
}

// Bytes returns the minimal big-endian encoding of the modulus.
func (m Modulus) Bytes() []byte {
	return m.value.Bytes()
}
