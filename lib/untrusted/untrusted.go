// Package untrusted provides a forward-only cursor over attacker-controlled
// input. Parsers consume bytes through a Reader and can never rewind, so
// every byte is examined at most once and a successful ReadAll proves the
// whole input was consumed.
package untrusted

import "github.com/samber/oops"

// ErrEndOfInput is returned by ReadByte when no bytes remain.
var ErrEndOfInput = oops.Errorf("unexpected end of input")

// Input is an immutable view over untrusted bytes.
type Input struct {
	value []byte
}

// NewInput wraps raw bytes in an Input. The caller must not mutate the
// slice while the Input is in use.
func NewInput(b []byte) Input {
	return Input{value: b}
}

// Len returns the number of bytes in the view.
func (in Input) Len() int {
	return len(in.value)
}

// ReadAll runs fn over a fresh Reader positioned at the start of the input.
// If fn succeeds but leaves bytes unconsumed, incomplete is returned.
func (in Input) ReadAll(incomplete error, fn func(*Reader) error) error {
	r := NewReader(in)
	if err := fn(r); err != nil {
		return err
	}
	if !r.AtEnd() {
		return incomplete
	}
	return nil
}

// Reader is a forward-only cursor over an Input.
type Reader struct {
	input []byte
	pos   int
}

// NewReader returns a Reader positioned at the start of the input.
func NewReader(in Input) *Reader {
	return &Reader{input: in.value}
}

// AtEnd reports whether every byte has been consumed.
func (r *Reader) AtEnd() bool {
	return r.pos == len(r.input)
}

// Peek reports whether the next unconsumed byte equals b. It does not
// advance the cursor and returns false at end of input.
func (r *Reader) Peek(b byte) bool {
	return r.pos < len(r.input) && r.input[r.pos] == b
}

// ReadByte consumes and returns the next byte, or ErrEndOfInput when the
// cursor is exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if r.AtEnd() {
		return 0, ErrEndOfInput
	}
	b := r.input[r.pos]
	r.pos++
	return b, nil
}
