// Package rsa validates untrusted RSA public key material before it is
// allowed anywhere near exponentiation code. Field values only exist in
// validated form: an Exponent or Modulus can be obtained solely through the
// decoding constructors in this package or the exported pre-validated
// values, so holding one is proof the acceptance checks already ran.
package rsa

import "github.com/go-i2p/logger"

var log = logger.GetGoI2PLogger()
