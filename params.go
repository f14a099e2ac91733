package phc

// Field size limits of the Argon2i hash string format, in bytes.
const (
	MaxKeyIDLen          = 8
	MaxAssociatedDataLen = 32
	MinSaltLen           = 8
	MaxSaltLen           = 48
	MinOutputLen         = 12
	MaxOutputLen         = 64
)

// Params holds the values carried by an Argon2i hash string.
//
// A zero-length KeyID, AssociatedData, Salt or Output means the field
// is absent from the string. The format cannot represent a field that
// is present but empty.
type Params struct {
	MemoryKiB   uint32 // memory cost in KiB; at least 8*Parallelism
	TimeCost    uint32 // iteration count; at least 1
	Parallelism uint8  // lane count; at least 1

	KeyID          []byte // at most MaxKeyIDLen bytes
	AssociatedData []byte // at most MaxAssociatedDataLen bytes
	Salt           []byte // absent, or MinSaltLen..MaxSaltLen bytes
	Output         []byte // absent, or MinOutputLen..MaxOutputLen bytes; requires Salt
}

// Validate checks every range and relational constraint the format
// imposes. Decode only produces records that pass; Encode refuses
// records that do not.
func (p *Params) Validate() error {
	if p.MemoryKiB < 1 || p.TimeCost < 1 || p.Parallelism < 1 {
		return ErrParameterOutOfRange
	}
	if p.MemoryKiB < 8*uint32(p.Parallelism) {
		return ErrParameterOutOfRange
	}
	if len(p.KeyID) > MaxKeyIDLen {
		return ErrFieldTooLong
	}
	if len(p.AssociatedData) > MaxAssociatedDataLen {
		return ErrFieldTooLong
	}
	if len(p.Salt) > MaxSaltLen {
		return ErrFieldTooLong
	}
	if len(p.Salt) != 0 && len(p.Salt) < MinSaltLen {
		return ErrFieldOutOfRange
	}
	if len(p.Output) > MaxOutputLen {
		return ErrFieldTooLong
	}
	if len(p.Output) != 0 && len(p.Output) < MinOutputLen {
		return ErrFieldOutOfRange
	}
	if len(p.Output) != 0 && len(p.Salt) == 0 {
		return ErrFieldOutOfRange
	}
	return nil
}
