package config

// ConfigDefaults contains all default configuration values for keycheck.
// This centralizes default values to make them easy to discover, document, and modify.
type ConfigDefaults struct {
	// Acceptance policy defaults
	Policy PolicyDefaults
}

// PolicyDefaults contains default values for the key acceptance policy
type PolicyDefaults struct {
	// Context selects the exponent floor: "signing" requires e >= 65537,
	// "verification" accepts any odd e >= 3.
	// Default: verification
	Context string

	// MinModulusBits is the smallest acceptable modulus size.
	// Default: 1024 (legacy-compatible; signing contexts should raise this to 2048)
	MinModulusBits int

	// MaxModulusBits is the largest acceptable modulus size.
	// Default: 8192
	MaxModulusBits int
}

// Defaults returns the built-in configuration values.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Policy: PolicyDefaults{
			Context:        ContextVerification,
			MinModulusBits: 1024,
			MaxModulusBits: 8192,
		},
	}
}
