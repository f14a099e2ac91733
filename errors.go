package phc

import (
	"errors"
	"fmt"
)

// Errors reported by Decode, Encode and Validate. Decode failures are
// wrapped in a *DecodeError; match them with errors.Is.
var (
	// ErrBadToken means a literal token of the grammar (tag name,
	// field prefix, '$' separator) did not match.
	ErrBadToken = errors.New("phc: unexpected token")

	// ErrMalformedInteger means a decimal field had no digits, a
	// leading zero, or overflowed the 64-bit accumulator.
	ErrMalformedInteger = errors.New("phc: malformed integer")

	// ErrParameterOutOfRange means m, t or p violated its range or
	// the m >= 8*p relation.
	ErrParameterOutOfRange = errors.New("phc: parameter out of range")

	// ErrMalformedBase64 means a Base64 chunk was non-canonical:
	// its length was 1 mod 4, or its leftover bits were not zero.
	ErrMalformedBase64 = errors.New("phc: malformed base64")

	// ErrFieldTooLong means a decoded chunk overran its field's
	// fixed capacity.
	ErrFieldTooLong = errors.New("phc: field too long")

	// ErrFieldOutOfRange means a salt or output was present but
	// shorter than its minimum, or an output appeared without a salt.
	ErrFieldOutOfRange = errors.New("phc: field length out of range")

	// ErrTrailingData means input remained after a structurally
	// complete record.
	ErrTrailingData = errors.New("phc: trailing data after hash string")

	// ErrBufferTooSmall means the destination buffer cannot hold the
	// encoded string.
	ErrBufferTooSmall = errors.New("phc: buffer too small")
)

// DecodeError reports where in the input decoding failed.
type DecodeError struct {
	Err    error // one of the sentinel errors above
	Offset int   // byte offset into the input string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }
