package layout

import (
	"go.bytecodealliance.org/wit"
)

// Info is the layout of one element kind.
type Info struct {
	FieldOffs map[string]uint32
	Size      uint32
	Align     uint32
}

// Offset returns the byte offset of a record field.
func (i Info) Offset(field string) (uint32, bool) {
	off, ok := i.FieldOffs[field]
	return off, ok
}

// Calculator computes and caches layouts.
type Calculator struct {
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case wit.String:
		return Info{Size: 8, Align: 4} // [ptr: u32, len: u32]
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var info Info

	switch kind := t.Kind.(type) {
	case *wit.Record:
		info = c.calculateRecord(kind)
	case *wit.Enum:
		info = c.calculateEnum(kind)
	case *wit.List:
		info = Info{Size: 8, Align: 4}
	case *wit.Tuple:
		info = c.calculateTuple(kind)
	case *wit.Flags:
		info = c.calculateFlags(kind)
	case wit.Type:
		info = c.Calculate(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.cache[t] = info
	return info
}

func (c *Calculator) calculateRecord(r *wit.Record) Info {
	if len(r.Fields) == 0 {
		return Info{Size: 0, Align: 1}
	}

	fieldOffs := make(map[string]uint32, len(r.Fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, field := range r.Fields {
		fieldLayout := c.Calculate(field.Type)

		offset = AlignTo(offset, fieldLayout.Align)
		fieldOffs[field.Name] = offset

		if fieldLayout.Align > maxAlign {
			maxAlign = fieldLayout.Align
		}

		offset += fieldLayout.Size
	}

	totalSize := AlignTo(offset, maxAlign)

	return Info{
		Size:      totalSize,
		Align:     maxAlign,
		FieldOffs: fieldOffs,
	}
}

func (c *Calculator) calculateEnum(e *wit.Enum) Info {
	size := DiscriminantSize(len(e.Cases))
	return Info{Size: size, Align: size}
}

func (c *Calculator) calculateTuple(t *wit.Tuple) Info {
	if len(t.Types) == 0 {
		return Info{Size: 0, Align: 1}
	}

	maxAlign := uint32(1)
	offset := uint32(0)

	for _, typ := range t.Types {
		elemLayout := c.Calculate(typ)
		offset = AlignTo(offset, elemLayout.Align)

		if elemLayout.Align > maxAlign {
			maxAlign = elemLayout.Align
		}

		offset += elemLayout.Size
	}

	totalSize := AlignTo(offset, maxAlign)

	return Info{
		Size:  totalSize,
		Align: maxAlign,
	}
}

func (c *Calculator) calculateFlags(f *wit.Flags) Info {
	numFlags := len(f.Flags)

	if numFlags == 0 {
		return Info{Size: 0, Align: 1}
	}

	if numFlags <= 8 {
		return Info{Size: 1, Align: 1}
	} else if numFlags <= 16 {
		return Info{Size: 2, Align: 2}
	} else if numFlags <= 32 {
		return Info{Size: 4, Align: 4}
	} else if numFlags <= 64 {
		return Info{Size: 8, Align: 8}
	}

	numU32s := (numFlags + 31) / 32
	return Info{Size: uint32(numU32s * 4), Align: 4}
}

// AlignTo rounds offset up to the next multiple of align (a power of two).
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize returns the byte width of an enum with n cases.
func DiscriminantSize(n int) uint32 {
	switch {
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	default:
		return 4
	}
}
