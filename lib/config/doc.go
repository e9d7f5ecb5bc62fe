// Package config provides the acceptance policy applied to untrusted RSA
// key material.
//
// A Policy bundles the context-dependent validation floors: the exponent
// floor (65537 for signing contexts, 3 for permissive verification) and the
// modulus bit-length bounds. Policies come from three places, in order of
// precedence: command-line flags, a yaml config file under
// $HOME/.keycheck/, and the built-in defaults. The config file is created
// on first run so the defaults are discoverable and editable.
package config
