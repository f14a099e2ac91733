// Package phc encodes and decodes Argon2i hash strings in the PHC
// string format.
//
// The package carries parameters, an optional key identifier, optional
// associated data, and the optional salt and output of an Argon2i hash
// as a single delimited ASCII string. It does not compute the hash
// itself.
//
// # Format
//
//	$argon2i$m=<dec>,t=<dec>,p=<dec>[,keyid=<b64>][,data=<b64>][$<b64>[$<b64>]]
//
// <dec> is a minimal decimal integer (no sign, no leading zeros) and
// <b64> is unpadded Base64 (A-Z, a-z, 0-9, +, /; no '=' characters, no
// whitespace). The two trailing binary chunks are, in order, the salt
// and the output. Both are optional, but an output cannot appear
// without a salt.
//
// Parameter constraints: m and t must fit in 32 bits and be at least 1,
// p must be between 1 and 255, and m must be at least 8*p. The key
// identifier is at most 8 bytes, associated data at most 32, the salt
// between 8 and 48, and the output between 12 and 64.
//
// # Canonical Encoding
//
// Decode accepts exactly one representation of any record. Integers
// with leading zeros, Base64 chunks whose trailing bits are nonzero or
// whose length is 1 mod 4, padding characters, and trailing input after
// a complete record are all rejected. As a consequence
// Encode(Decode(s)) reproduces s byte for byte for every accepted s,
// and Decode either returns a fully validated record or a specific
// error, never a partial result.
//
// # Constant Time
//
// Character classification (Base64 alphabet membership, digit tests)
// uses masked subtract-and-shift arithmetic rather than value-dependent
// branches or lookup tables, since hash strings sit on a
// security-sensitive path. Go's compiler does not guarantee that such
// code stays branch-free through optimization; treat the property as
// intent, not as a verified guarantee.
//
// All operations are pure functions over their arguments and are safe
// for concurrent use.
package phc
