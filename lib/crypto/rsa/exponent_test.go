package rsa

import (
	"encoding/binary"
	"testing"

	"github.com/davidbarton/ring/lib/crypto/types"
	"github.com/davidbarton/ring/lib/untrusted"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeExponent(t *testing.T, b []byte, min Exponent) (Exponent, error) {
	t.Helper()
	return ExponentFromBEBytes(untrusted.NewInput(b), min)
}

func requireRejected(t *testing.T, err error, reason types.RejectionReason) {
	t.Helper()
	var kr types.KeyRejected
	require.ErrorAs(t, err, &kr)
	assert.Equal(t, reason, kr.Reason())
}

// minimal big-endian encoding of v, for round-trip tests
func beBytes(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// TestExponentF4 tests the common case: the three-byte encoding of 65537
// accepted under the strict signing floor.
func TestExponentF4(t *testing.T) {
	e, err := decodeExponent(t, []byte{0x01, 0x00, 0x01}, ExponentF4)
	require.NoError(t, err)
	assert.Equal(t, uint64(65537), e.Value())
}

// TestExponentLeadingZeroRejected tests that a zero-padded encoding is
// refused before any value accumulation.
func TestExponentLeadingZeroRejected(t *testing.T) {
	_, err := decodeExponent(t, []byte{0x00, 0x01, 0x00, 0x01}, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidEncoding)

	// a lone zero byte is caught by the same rule
	_, err = decodeExponent(t, []byte{0x00}, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidEncoding)
}

// TestExponentEmptyInputRejected tests that zero-length input is refused as
// a malformed encoding.
func TestExponentEmptyInputRejected(t *testing.T) {
	_, err := decodeExponent(t, nil, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidEncoding)
}

// TestExponentSmallestAccepted tests the permissive floor: 3 is the
// smallest exponent any context accepts.
func TestExponentSmallestAccepted(t *testing.T) {
	e, err := decodeExponent(t, []byte{0x03}, ExponentMin)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), e.Value())
}

// TestExponentEvenRejected tests that parity violations report invalid
// component, not an out-of-range reason.
func TestExponentEvenRejected(t *testing.T) {
	_, err := decodeExponent(t, []byte{0x02}, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidComponent)

	_, err = decodeExponent(t, []byte{0x01, 0x00, 0x00}, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidComponent)
}

// TestExponentBelowFloorRejected tests both floors: 1 is below the absolute
// minimum, and an otherwise valid 3 is below the signing floor.
func TestExponentBelowFloorRejected(t *testing.T) {
	_, err := decodeExponent(t, []byte{0x01}, ExponentF4)
	requireRejected(t, err, types.ReasonTooSmall)

	_, err = decodeExponent(t, []byte{0x01}, ExponentMin)
	requireRejected(t, err, types.ReasonTooSmall)

	_, err = decodeExponent(t, []byte{0x03}, ExponentF4)
	requireRejected(t, err, types.ReasonTooSmall)
}

// TestExponentOversizedEncodingRejected tests that any input longer than
// five bytes is refused regardless of content.
func TestExponentOversizedEncodingRejected(t *testing.T) {
	inputs := [][]byte{
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x01},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		make([]byte, 4096),
	}
	for _, in := range inputs {
		_, err := decodeExponent(t, in, ExponentMin)
		requireRejected(t, err, types.ReasonTooLarge)
	}
}

// TestExponentCeiling tests the 33-bit boundary. 2^33-1 is the largest
// accepted value; 2^33 trips the parity check and 2^33+1, the smallest odd
// value above the ceiling, reports too large.
func TestExponentCeiling(t *testing.T) {
	e, err := decodeExponent(t, []byte{0x01, 0xff, 0xff, 0xff, 0xff}, ExponentMin)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<33-1, e.Value())
	assert.Equal(t, ExponentMax.Value(), e.Value())

	_, err = decodeExponent(t, []byte{0x02, 0x00, 0x00, 0x00, 0x00}, ExponentMin)
	requireRejected(t, err, types.ReasonInvalidComponent)

	_, err = decodeExponent(t, []byte{0x02, 0x00, 0x00, 0x00, 0x01}, ExponentMin)
	requireRejected(t, err, types.ReasonTooLarge)
}

// TestExponentConstants tests that every exported pre-validated value
// satisfies the invariants it promises.
func TestExponentConstants(t *testing.T) {
	for _, e := range []Exponent{ExponentMin, ExponentF4, ExponentMax} {
		v := e.Value()
		assert.Equal(t, uint64(1), v&1, "constant %d must be odd", v)
		assert.GreaterOrEqual(t, v, ExponentMin.Value())
		assert.LessOrEqual(t, v, ExponentMax.Value())
	}
}

// TestExponentRoundTrip tests that decoding the minimal encoding of a valid
// value yields that value exactly.
func TestExponentRoundTrip(t *testing.T) {
	values := []uint64{3, 5, 17, 257, 65537, 1<<24 + 1, 1<<33 - 1}
	for _, v := range values {
		e, err := decodeExponent(t, beBytes(v), ExponentMin)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, e.Value())
	}
}

// TestExponentMonotonicity tests that loosening the floor never turns an
// accepted encoding into a rejected one.
func TestExponentMonotonicity(t *testing.T) {
	encodings := [][]byte{
		{0x01, 0x00, 0x01},
		{0x01, 0xff, 0xff, 0xff, 0xff},
		beBytes(65539),
	}
	for _, in := range encodings {
		strict, err := decodeExponent(t, in, ExponentF4)
		require.NoError(t, err)
		loose, err := decodeExponent(t, in, ExponentMin)
		require.NoError(t, err)
		assert.Equal(t, strict.Value(), loose.Value())
	}
}
