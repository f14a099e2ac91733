package phc

// Constant-time predicates over values in the 0..255 range. Each
// returns 0xFF for true and 0x00 for false, computed with wrapping
// subtraction and shifts so that no branch or table index depends on
// the operand values. Results are full 8-bit masks so callers can AND
// them directly against candidate bytes.

// ctEq reports whether x == y.
func ctEq(x, y uint32) uint32 {
	return (((-(x ^ y)) >> 8) & 0xFF) ^ 0xFF
}

// ctGT reports whether x > y.
func ctGT(x, y uint32) uint32 {
	return ((y - x) >> 8) & 0xFF
}

// ctGE reports whether x >= y.
func ctGE(x, y uint32) uint32 {
	return ctGT(y, x) ^ 0xFF
}

// ctLT reports whether x < y.
func ctLT(x, y uint32) uint32 {
	return ctGT(y, x)
}

// ctLE reports whether x <= y.
func ctLE(x, y uint32) uint32 {
	return ctGE(y, x)
}
