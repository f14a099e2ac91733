package phc

import (
	"math"
	"strconv"
)

// parseDecimal consumes a maximal run of ASCII digits from the front
// of src and returns the accumulated value and the number of
// characters consumed. Only the minimal encoding is accepted: at least
// one digit, no leading zero ("0" alone is fine, "0120" is not), and
// no overflow of the 64-bit accumulator. Digit classification goes
// through the constant-time predicates.
func parseDecimal(src string) (v uint64, consumed int, err error) {
	for consumed < len(src) {
		c := uint32(src[consumed])
		if ctGE(c, '0')&ctLE(c, '9') == 0 {
			break
		}
		d := uint64(c - '0')
		if v > math.MaxUint64/10 {
			return 0, 0, ErrMalformedInteger
		}
		v *= 10
		if d > math.MaxUint64-v {
			return 0, 0, ErrMalformedInteger
		}
		v += d
		consumed++
	}
	if consumed == 0 {
		return 0, 0, ErrMalformedInteger
	}
	if consumed > 1 && src[0] == '0' {
		return 0, 0, ErrMalformedInteger
	}
	return v, consumed, nil
}

// decimalLen returns the number of digits in the minimal decimal form
// of v.
func decimalLen(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// formatDecimal writes the minimal decimal form of v into dst and
// returns the number of characters written, or ErrBufferTooSmall.
func formatDecimal(dst []byte, v uint64) (int, error) {
	n := decimalLen(v)
	if n > len(dst) {
		return 0, ErrBufferTooSmall
	}
	strconv.AppendUint(dst[:0], v, 10)
	return n, nil
}
