package main

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/binary"
	"encoding/pem"
	"flag"
	"os"

	"github.com/davidbarton/ring/lib/config"
	ringrsa "github.com/davidbarton/ring/lib/crypto/rsa"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/crypto/ssh"
)

var log = logger.GetGoI2PLogger()

func main() {
	keyPath := flag.String("key", "", "path to an RSA public key (PEM or OpenSSH authorized_keys format)")
	context := flag.String("context", "", "acceptance context: signing or verification (overrides config)")
	cfgFile := flag.String("config", "", "path to config file")
	flag.Parse()

	if *keyPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.CfgFile = *cfgFile
	config.InitConfig()
	policy := config.NewPolicyFromViper()
	if *context != "" {
		policy.Context = *context
	}

	pub, err := loadPublicKey(*keyPath)
	if err != nil {
		log.WithError(err).Errorf("failed to load public key from %s", *keyPath)
		os.Exit(1)
	}

	checked, err := checkKey(pub, policy)
	if err != nil {
		// One opaque signal regardless of which check fired; the detail
		// stays in the debug logs.
		log.WithError(err).Error("key rejected")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"modulus_bits": checked.Modulus().BitLen(),
		"exponent":     checked.Exponent().Value(),
		"context":      policy.Context,
	}).Info("key accepted")
}

// loadPublicKey parses PEM (PKIX or PKCS#1) and OpenSSH public key files.
// Parsing only establishes structure; checkKey establishes acceptability.
func loadPublicKey(path string) (*rsa.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Errorf("failed to read key file: %w", err)
	}

	if block, _ := pem.Decode(raw); block != nil {
		return parsePEMBlock(block)
	}

	pub, _, _, _, err := ssh.ParseAuthorizedKey(raw)
	if err != nil {
		return nil, oops.Errorf("input is neither PEM nor an OpenSSH public key: %w", err)
	}
	cryptoPub, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, oops.Errorf("unsupported OpenSSH key type: %s", pub.Type())
	}
	rsaPub, ok := cryptoPub.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, oops.Errorf("not an RSA key: %s", pub.Type())
	}
	return rsaPub, nil
}

func parsePEMBlock(block *pem.Block) (*rsa.PublicKey, error) {
	switch block.Type {
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, oops.Errorf("failed to parse PKCS#1 public key: %w", err)
		}
		return pub, nil
	default:
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, oops.Errorf("failed to parse PKIX public key: %w", err)
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, oops.Errorf("not an RSA key")
		}
		return rsaPub, nil
	}
}

// checkKey re-validates an already-parsed key through the acceptance gate
// by re-encoding its fields and running them through the decoding
// constructors.
func checkKey(pub *rsa.PublicKey, policy config.Policy) (*ringrsa.PublicKey, error) {
	if pub.E <= 0 {
		return nil, oops.Errorf("non-positive public exponent: %d", pub.E)
	}
	minE, err := policy.MinExponent()
	if err != nil {
		return nil, err
	}
	return ringrsa.NewPublicKey(
		pub.N.Bytes(),
		bigEndianBytes(uint64(pub.E)),
		minE,
		policy.MinModulusBits,
		policy.MaxModulusBits,
	)
}

// minimal big-endian encoding, no leading zero bytes
func bigEndianBytes(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}
