package phc

// Unpadded Base64 (A-Z, a-z, 0-9, +, /) as used by the PHC string
// format: no '=' padding, no whitespace, and only canonical encodings
// accepted on decode. Character classification goes through the
// constant-time predicates rather than tables or range branches.

// b64ByteToChar maps a 6-bit value to its Base64 character.
func b64ByteToChar(x uint32) byte {
	c := (ctLT(x, 26) & (x + 'A')) |
		(ctGE(x, 26) & ctLT(x, 52) & (x - 26 + 'a')) |
		(ctGE(x, 52) & ctLT(x, 62) & (x - 52 + '0')) |
		(ctEq(x, 62) & '+') | (ctEq(x, 63) & '/')
	return byte(c)
}

// b64CharToByte maps a Base64 character to its 6-bit value, or 0xFF if
// c is not part of the alphabet.
func b64CharToByte(c byte) uint32 {
	x := uint32(c)
	v := (ctGE(x, 'A') & ctLE(x, 'Z') & (x - 'A')) |
		(ctGE(x, 'a') & ctLE(x, 'z') & (x - 'a' + 26)) |
		(ctGE(x, '0') & ctLE(x, '9') & (x - '0' + 52)) |
		(ctEq(x, '+') & 62) | (ctEq(x, '/') & 63)
	// v is 0 both for 'A' and for non-alphabet characters; the final
	// term turns only the latter into 0xFF.
	return v | (ctEq(v, 0) & (ctEq(x, 'A') ^ 0xFF))
}

// b64EncodedLen returns the number of characters needed to encode n
// bytes: floor(n/3)*4 plus 2 or 3 for a trailing group of 1 or 2.
func b64EncodedLen(n int) int {
	l := n / 3 * 4
	switch n % 3 {
	case 1:
		l += 2
	case 2:
		l += 3
	}
	return l
}

// b64Encode writes the unpadded Base64 encoding of src into dst and
// returns the number of characters written. It fails with
// ErrBufferTooSmall when dst cannot hold the full encoding.
func b64Encode(dst, src []byte) (int, error) {
	if b64EncodedLen(len(src)) > len(dst) {
		return 0, ErrBufferTooSmall
	}
	var acc, accLen uint32
	n := 0
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		accLen += 8
		for accLen >= 6 {
			accLen -= 6
			dst[n] = b64ByteToChar((acc >> accLen) & 0x3F)
			n++
		}
	}
	if accLen > 0 {
		dst[n] = b64ByteToChar((acc << (6 - accLen)) & 0x3F)
		n++
	}
	return n, nil
}

// b64Decode decodes Base64 characters from the front of src into dst,
// stopping at the first character outside the alphabet or at the end
// of src. It returns the number of bytes written and the number of
// characters consumed.
//
// dst caps the output: overrunning it fails with ErrFieldTooLong.
// Once the alphabet run ends, 0, 2 or 4 bits may remain buffered (6
// means the run length was 1 mod 4) and they must all be zero;
// anything else is a non-canonical encoding and fails with
// ErrMalformedBase64.
func b64Decode(dst []byte, src string) (n, consumed int, err error) {
	var acc, accLen uint32
	for consumed < len(src) {
		d := b64CharToByte(src[consumed])
		if d == 0xFF {
			break
		}
		consumed++
		acc = acc<<6 | d
		accLen += 6
		if accLen >= 8 {
			accLen -= 8
			if n >= len(dst) {
				return 0, 0, ErrFieldTooLong
			}
			dst[n] = byte(acc >> accLen)
			n++
		}
	}
	if accLen > 4 || acc&((1<<accLen)-1) != 0 {
		return 0, 0, ErrMalformedBase64
	}
	return n, consumed, nil
}
