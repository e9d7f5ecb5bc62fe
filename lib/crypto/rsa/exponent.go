package rsa

import (
	"github.com/davidbarton/ring/lib/crypto/types"
	"github.com/davidbarton/ring/lib/untrusted"
)

// Exponent is the public exponent `e` of an RSA key. A live Exponent is
// always nonzero, odd and within [ExponentMin, ExponentMax], so downstream
// code never has to re-check it.
type Exponent struct {
	value uint64
}

var (
	// ExponentMin is the absolute floor: 3 is the smallest odd integer
	// greater than 1. Verification of third-party keys uses this floor
	// for compatibility with historically-issued keys.
	ExponentMin = Exponent{value: 3}

	// ExponentF4 is 65537. NIST SP800-89 defers to FIPS 186-3, which
	// requires e >= 65537; signing contexts enforce this floor.
	ExponentF4 = Exponent{value: 65537}

	// ExponentMax is 2^33 - 1. The ceiling bounds the cost of big-integer
	// exponentiation by squaring, mitigating resource exhaustion through
	// absurdly large public exponents. Older Windows CryptoAPI rejects
	// exponents above 32 bits, so nothing in common use comes near it.
	ExponentMax = Exponent{value: 1<<33 - 1}
)

// 5 bytes hold values up to 2^40-1, comfortably above the 33-bit ceiling,
// and allow a clean length check before any parsing.
const exponentMaxEncodedLen = 5

// ExponentFromBEBytes decodes a big-endian, minimally-encoded unsigned
// integer from untrusted input and validates it as a public exponent.
// minValue is the caller's inclusive floor: ExponentF4 for strict signing
// contexts, ExponentMin for permissive verification.
func ExponentFromBEBytes(input untrusted.Input, minValue Exponent) (Exponent, error) {
	if input.Len() > exponentMaxEncodedLen {
		return Exponent{}, types.KeyRejectedTooLarge()
	}
	var value uint64
	err := input.ReadAll(types.KeyRejectedInvalidEncoding(), func(r *untrusted.Reader) error {
		// The exponent can't be zero and it can't be prefixed with
		// zero-valued bytes.
		if r.Peek(0x00) {
			return types.KeyRejectedInvalidEncoding()
		}
		for {
			b, err := r.ReadByte()
			if err != nil {
				return types.KeyRejectedInvalidEncoding()
			}
			value = value<<8 | uint64(b)
			if r.AtEnd() {
				return nil
			}
		}
	})
	if err != nil {
		return Exponent{}, err
	}
	if value == 0 {
		return Exponent{}, types.KeyRejectedTooSmall()
	}
	if value < minValue.value {
		return Exponent{}, types.KeyRejectedTooSmall()
	}
	if value&1 != 1 {
		return Exponent{}, types.KeyRejectedInvalidComponent()
	}
	if value > ExponentMax.value {
		return Exponent{}, types.KeyRejectedTooLarge()
	}
	return Exponent{value: value}, nil
}

// Value returns the exponent as a raw integer.
func (e Exponent) Value() uint64 {
	return e.value
}
