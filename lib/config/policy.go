package config

import (
	"github.com/davidbarton/ring/lib/crypto/rsa"
	"github.com/samber/oops"
)

// Policy contexts. Signing enforces the FIPS 186-3 exponent floor;
// verification stays permissive for compatibility with third-party keys.
const (
	ContextSigning      = "signing"
	ContextVerification = "verification"
)

// Policy is the acceptance posture applied to untrusted key material.
type Policy struct {
	Context        string
	MinModulusBits int
	MaxModulusBits int
}

// SigningPolicy returns the strict posture for key generation and
// signing-key acceptance.
func SigningPolicy() Policy {
	return Policy{
		Context:        ContextSigning,
		MinModulusBits: rsa.ModulusSigningMinBits,
		MaxModulusBits: rsa.ModulusMaxBits,
	}
}

// VerificationPolicy returns the permissive posture for verifying
// signatures made by third-party keys.
func VerificationPolicy() Policy {
	return Policy{
		Context:        ContextVerification,
		MinModulusBits: rsa.ModulusMinBits,
		MaxModulusBits: rsa.ModulusMaxBits,
	}
}

// MinExponent maps the policy context to its exponent floor. The floor is
// always one of the pre-validated exponent values, so an arbitrary integer
// can never be smuggled in as a floor through configuration.
func (p Policy) MinExponent() (rsa.Exponent, error) {
	switch p.Context {
	case ContextSigning:
		return rsa.ExponentF4, nil
	case ContextVerification:
		return rsa.ExponentMin, nil
	default:
		return rsa.Exponent{}, oops.Errorf("unknown policy context: %q", p.Context)
	}
}
