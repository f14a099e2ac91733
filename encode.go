package phc

// EncodedLen returns the exact number of characters Encode produces
// for p. It assumes p is valid.
func EncodedLen(p *Params) int {
	n := len(tokTag) + len(tokM) + decimalLen(uint64(p.MemoryKiB)) +
		len(tokT) + decimalLen(uint64(p.TimeCost)) +
		len(tokP) + decimalLen(uint64(p.Parallelism))
	if len(p.KeyID) > 0 {
		n += len(tokKeyID) + b64EncodedLen(len(p.KeyID))
	}
	if len(p.AssociatedData) > 0 {
		n += len(tokData) + b64EncodedLen(len(p.AssociatedData))
	}
	if len(p.Salt) == 0 {
		return n
	}
	n += len(tokSep) + b64EncodedLen(len(p.Salt))
	if len(p.Output) == 0 {
		return n
	}
	return n + len(tokSep) + b64EncodedLen(len(p.Output))
}

// EncodeBuffer encodes p into the caller-owned dst and returns the
// number of characters written. p is validated first; a record that
// would not round-trip is refused before anything is written. Every
// write step checks the remaining capacity and fails with
// ErrBufferTooSmall; dst contents are unspecified after a failure.
func EncodeBuffer(dst []byte, p *Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	e := encoder{dst: dst}
	if err := e.record(p); err != nil {
		return 0, err
	}
	return e.n, nil
}

// Encode returns the canonical hash string for p, allocating exactly
// EncodedLen(p) bytes. It fails only if p does not validate.
func Encode(p *Params) (string, error) {
	dst := make([]byte, EncodedLen(p))
	n, err := EncodeBuffer(dst, p)
	if err != nil {
		return "", err
	}
	return string(dst[:n]), nil
}

// encoder mirrors decoder: the same linear segment sequence, writing
// instead of consuming.
type encoder struct {
	dst []byte
	n   int
}

func (e *encoder) literal(tok string) error {
	if len(tok) > len(e.dst)-e.n {
		return ErrBufferTooSmall
	}
	e.n += copy(e.dst[e.n:], tok)
	return nil
}

func (e *encoder) decimal(v uint64) error {
	n, err := formatDecimal(e.dst[e.n:], v)
	if err != nil {
		return err
	}
	e.n += n
	return nil
}

func (e *encoder) chunk(b []byte) error {
	n, err := b64Encode(e.dst[e.n:], b)
	if err != nil {
		return err
	}
	e.n += n
	return nil
}

func (e *encoder) record(p *Params) error {
	if err := e.literal(tokTag); err != nil {
		return err
	}
	if err := e.literal(tokM); err != nil {
		return err
	}
	if err := e.decimal(uint64(p.MemoryKiB)); err != nil {
		return err
	}
	if err := e.literal(tokT); err != nil {
		return err
	}
	if err := e.decimal(uint64(p.TimeCost)); err != nil {
		return err
	}
	if err := e.literal(tokP); err != nil {
		return err
	}
	if err := e.decimal(uint64(p.Parallelism)); err != nil {
		return err
	}
	if len(p.KeyID) > 0 {
		if err := e.literal(tokKeyID); err != nil {
			return err
		}
		if err := e.chunk(p.KeyID); err != nil {
			return err
		}
	}
	if len(p.AssociatedData) > 0 {
		if err := e.literal(tokData); err != nil {
			return err
		}
		if err := e.chunk(p.AssociatedData); err != nil {
			return err
		}
	}
	if len(p.Salt) == 0 {
		return nil
	}
	if err := e.literal(tokSep); err != nil {
		return err
	}
	if err := e.chunk(p.Salt); err != nil {
		return err
	}
	if len(p.Output) == 0 {
		return nil
	}
	if err := e.literal(tokSep); err != nil {
		return err
	}
	return e.chunk(p.Output)
}
