package rsa

import (
	"crypto"
	stdrsa "crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"math"

	"github.com/davidbarton/ring/lib/crypto/types"
	"github.com/davidbarton/ring/lib/untrusted"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// PublicKey is a validated RSA public key: a Modulus and Exponent pair that
// has passed every acceptance check for the caller's context.
type PublicKey struct {
	n Modulus
	e Exponent
}

// NewPublicKey validates the raw big-endian encodings of the modulus and
// exponent and assembles them into a PublicKey. minE and minModulusBits
// carry the caller's acceptance posture; see ExponentFromBEBytes and
// ModulusFromBEBytes for the individual checks.
func NewPublicKey(nBytes, eBytes []byte, minE Exponent, minModulusBits, maxModulusBits int) (*PublicKey, error) {
	n, err := ModulusFromBEBytes(untrusted.NewInput(nBytes), minModulusBits, maxModulusBits)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":  "(rsa) NewPublicKey",
			"len": len(nBytes),
		}).Debug("rejecting RSA modulus")
		return nil, err
	}
	e, err := ExponentFromBEBytes(untrusted.NewInput(eBytes), minE)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":  "(rsa) NewPublicKey",
			"len": len(eBytes),
		}).Debug("rejecting RSA public exponent")
		return nil, err
	}
	return &PublicKey{n: n, e: e}, nil
}

// Modulus returns the validated public modulus.
func (k *PublicKey) Modulus() Modulus {
	return k.n
}

// Exponent returns the validated public exponent.
func (k *PublicKey) Exponent() Exponent {
	return k.e
}

// StdKey converts to the standard library representation for interop with
// crypto/rsa. Fails when the exponent does not fit the platform int.
func (k *PublicKey) StdKey() (*stdrsa.PublicKey, error) {
	if k.e.value > uint64(math.MaxInt) {
		return nil, oops.Errorf("exponent %d overflows int", k.e.value)
	}
	return &stdrsa.PublicKey{
		N: k.n.Value(),
		E: int(k.e.value),
	}, nil
}

// hash pairs modulus sizes with digest strengths: 2048-bit keys use
// SHA-256, 3072-bit keys SHA-384, anything larger SHA-512.
func (k *PublicKey) hash() (crypto.Hash, func(data []byte) []byte) {
	switch {
	case k.n.bits <= 2048:
		return crypto.SHA256, func(data []byte) []byte {
			h := sha256.Sum256(data)
			return h[:]
		}
	case k.n.bits <= 3072:
		return crypto.SHA384, func(data []byte) []byte {
			h := sha512.Sum384(data)
			return h[:]
		}
	default:
		return crypto.SHA512, func(data []byte) []byte {
			h := sha512.Sum512(data)
			return h[:]
		}
	}
}

// Verify implements types.Verifier.
// This method hashes the data with the digest matching the modulus size and
// verifies the signature.
func (k *PublicKey) Verify(data []byte, sig []byte) error {
	_, sum := k.hash()
	return k.VerifyHash(sum(data), sig)
}

// VerifyHash implements types.Verifier.
// This method verifies a pre-computed hash against the signature
func (k *PublicKey) VerifyHash(h []byte, sig []byte) error {
	pubKey, err := k.StdKey()
	if err != nil {
		return oops.Errorf("failed to convert RSA public key: %w", err)
	}

	hashAlg, _ := k.hash()
	if len(h) != hashAlg.Size() {
		// If we received a different hash size, warn but continue
		log.Warnf("RSA verification received unexpected hash size: %d", len(h))
	}

	if err := stdrsa.VerifyPKCS1v15(pubKey, hashAlg, h, sig); err != nil {
		return oops.Errorf("RSA signature verification failed: %w", types.ErrInvalidSignature)
	}

	return nil
}

// Bytes implements SigningPublicKey.
// Returns the minimal big-endian bytes of the modulus
func (k *PublicKey) Bytes() []byte {
	return k.n.Bytes()
}

// Len implements SigningPublicKey.
// Returns the length of the modulus in bytes
func (k *PublicKey) Len() int {
	return len(k.Bytes())
}

// NewVerifier implements SigningPublicKey.
// Creates a new verifier object that can be used to verify signatures
func (k *PublicKey) NewVerifier() (types.Verifier, error) {
	log.Debug("Creating new RSA verifier")
	return k, nil
}

var _ types.PublicKey = &PublicKey{}
var _ types.SigningPublicKey = &PublicKey{}
var _ types.Verifier = &PublicKey{}
