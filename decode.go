package phc

import (
	"math"
	"strings"
)

// Literal tokens of the grammar, in the order they appear.
const (
	tokTag   = "$argon2i"
	tokM     = "$m="
	tokT     = ",t="
	tokP     = ",p="
	tokKeyID = ",keyid="
	tokData  = ",data="
	tokSep   = "$"
)

// Decode parses an Argon2i hash string:
//
//	$argon2i$m=<dec>,t=<dec>,p=<dec>[,keyid=<b64>][,data=<b64>][$<b64>[$<b64>]]
//
// Decoding is strict: literal tokens must match exactly, integers must
// be minimal, Base64 chunks must be canonical, every range constraint
// is enforced as soon as the field is known, and the whole input must
// be consumed. On failure it returns a *DecodeError wrapping one of
// the sentinel errors; no partial record is ever returned.
func Decode(s string) (*Params, error) {
	d := decoder{src: s}
	p, err := d.record()
	if err != nil {
		return nil, &DecodeError{Err: err, Offset: d.pos}
	}
	return p, nil
}

// decoder walks the input left to right. There is no backtracking: the
// grammar is a linear sequence of mandatory and optional segments, and
// the first failing segment aborts the whole decode.
type decoder struct {
	src string
	pos int
}

func (d *decoder) rest() string { return d.src[d.pos:] }

func (d *decoder) done() bool { return d.pos == len(d.src) }

// literal consumes tok, or fails with ErrBadToken.
func (d *decoder) literal(tok string) error {
	if !strings.HasPrefix(d.rest(), tok) {
		return ErrBadToken
	}
	d.pos += len(tok)
	return nil
}

// optional consumes tok if present and reports whether it did.
func (d *decoder) optional(tok string) bool {
	if !strings.HasPrefix(d.rest(), tok) {
		return false
	}
	d.pos += len(tok)
	return true
}

// decimal parses a minimal decimal integer and enforces the 32-bit
// ceiling shared by m and t. Wider values parse at 64 bits first, so a
// value like 4294967296 is in range of the accumulator but out of
// range for the parameter.
func (d *decoder) decimal() (uint32, error) {
	v, n, err := parseDecimal(d.rest())
	if err != nil {
		return 0, err
	}
	d.pos += n
	if v > math.MaxUint32 {
		return 0, ErrParameterOutOfRange
	}
	return uint32(v), nil
}

// chunk decodes a Base64 chunk of at most max bytes into a fresh
// buffer.
func (d *decoder) chunk(max int) ([]byte, error) {
	buf := make([]byte, max)
	n, consumed, err := b64Decode(buf, d.rest())
	if err != nil {
		return nil, err
	}
	d.pos += consumed
	return buf[:n:n], nil
}

func (d *decoder) record() (*Params, error) {
	p := &Params{}

	if err := d.literal(tokTag); err != nil {
		return nil, err
	}

	if err := d.literal(tokM); err != nil {
		return nil, err
	}
	m, err := d.decimal()
	if err != nil {
		return nil, err
	}
	if m < 1 {
		return nil, ErrParameterOutOfRange
	}
	p.MemoryKiB = m

	if err := d.literal(tokT); err != nil {
		return nil, err
	}
	t, err := d.decimal()
	if err != nil {
		return nil, err
	}
	if t < 1 {
		return nil, ErrParameterOutOfRange
	}
	p.TimeCost = t

	if err := d.literal(tokP); err != nil {
		return nil, err
	}
	par, err := d.decimal()
	if err != nil {
		return nil, err
	}
	if par < 1 || par > 255 {
		return nil, ErrParameterOutOfRange
	}
	if m < 8*par {
		return nil, ErrParameterOutOfRange
	}
	p.Parallelism = uint8(par)

	if d.optional(tokKeyID) {
		if p.KeyID, err = d.chunk(MaxKeyIDLen); err != nil {
			return nil, err
		}
	}
	if d.optional(tokData) {
		if p.AssociatedData, err = d.chunk(MaxAssociatedDataLen); err != nil {
			return nil, err
		}
	}
	if d.done() {
		return p, nil
	}

	if err := d.literal(tokSep); err != nil {
		return nil, err
	}
	if p.Salt, err = d.chunk(MaxSaltLen); err != nil {
		return nil, err
	}
	if len(p.Salt) < MinSaltLen {
		return nil, ErrFieldOutOfRange
	}
	if d.done() {
		return p, nil
	}

	if err := d.literal(tokSep); err != nil {
		return nil, err
	}
	if p.Output, err = d.chunk(MaxOutputLen); err != nil {
		return nil, err
	}
	if len(p.Output) < MinOutputLen {
		return nil, ErrFieldOutOfRange
	}
	if !d.done() {
		return nil, ErrTrailingData
	}
	return p, nil
}
