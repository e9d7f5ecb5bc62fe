package types

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
)

// TestKeyRejectedReasons tests that each constructor carries its own
// classification and a distinct message.
func TestKeyRejectedReasons(t *testing.T) {
	cases := []struct {
		err    KeyRejected
		reason RejectionReason
	}{
		{KeyRejectedTooLarge(), ReasonTooLarge},
		{KeyRejectedTooSmall(), ReasonTooSmall},
		{KeyRejectedInvalidEncoding(), ReasonInvalidEncoding},
		{KeyRejectedInvalidComponent(), ReasonInvalidComponent},
	}
	seen := map[string]bool{}
	for _, c := range cases {
		assert.Equal(t, c.reason, c.err.Reason())
		assert.Equal(t, "key rejected: "+string(c.reason), c.err.Error())
		assert.False(t, seen[c.err.Error()], "duplicate message %q", c.err.Error())
		seen[c.err.Error()] = true
	}
}

// TestIsKeyRejected tests detection through wrapping, which is how callers
// fold every reason into one opaque rejection.
func TestIsKeyRejected(t *testing.T) {
	assert.True(t, IsKeyRejected(KeyRejectedTooSmall()))
	assert.True(t, IsKeyRejected(oops.Errorf("loading key: %w", KeyRejectedInvalidEncoding())))
	assert.False(t, IsKeyRejected(nil))
	assert.False(t, IsKeyRejected(oops.Errorf("disk on fire")))
}
