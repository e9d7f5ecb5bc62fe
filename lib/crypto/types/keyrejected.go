package types

import "errors"

// RejectionReason classifies why untrusted key material was refused.
type RejectionReason string

const (
	ReasonTooLarge         RejectionReason = "too large"
	ReasonTooSmall         RejectionReason = "too small"
	ReasonInvalidEncoding  RejectionReason = "invalid encoding"
	ReasonInvalidComponent RejectionReason = "invalid component"
)

// KeyRejected reports that a key component failed validation. The reason is
// for diagnostics; callers surfacing errors to end users should fold every
// reason into a single opaque rejection rather than echo the classification,
// so a remote peer learns nothing about which check fired.
type KeyRejected struct {
	reason RejectionReason
}

func (e KeyRejected) Error() string {
	return "key rejected: " + string(e.reason)
}

// Reason returns the rejection classification.
func (e KeyRejected) Reason() RejectionReason {
	return e.reason
}

// KeyRejectedTooLarge reports a component above its ceiling or an
// over-length encoding.
func KeyRejectedTooLarge() KeyRejected {
	return KeyRejected{reason: ReasonTooLarge}
}

// KeyRejectedTooSmall reports a zero component or one below the caller's
// floor.
func KeyRejectedTooSmall() KeyRejected {
	return KeyRejected{reason: ReasonTooSmall}
}

// KeyRejectedInvalidEncoding reports a structurally malformed encoding,
// such as a leading zero byte in a minimal big-endian integer.
func KeyRejectedInvalidEncoding() KeyRejected {
	return KeyRejected{reason: ReasonInvalidEncoding}
}

// KeyRejectedInvalidComponent reports a component that is numerically in
// range but structurally wrong, such as an even public exponent.
func KeyRejectedInvalidComponent() KeyRejected {
	return KeyRejected{reason: ReasonInvalidComponent}
}

// IsKeyRejected reports whether err is, or wraps, a KeyRejected.
func IsKeyRejected(err error) bool {
	var kr KeyRejected
	return errors.As(err, &kr)
}
