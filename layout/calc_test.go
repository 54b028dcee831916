package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.bytecodealliance.org/wit"
)

func vec2() *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.F32{}},
		{Name: "y", Type: wit.F32{}},
	}}}
}

func TestCalculatePrimitives(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		typ   wit.Type
		name  string
		size  uint32
		align uint32
	}{
		{wit.Bool{}, "bool", 1, 1},
		{wit.U8{}, "u8", 1, 1},
		{wit.U16{}, "u16", 2, 2},
		{wit.S16{}, "s16", 2, 2},
		{wit.U32{}, "u32", 4, 4},
		{wit.S32{}, "s32", 4, 4},
		{wit.F32{}, "f32", 4, 4},
		{wit.U64{}, "u64", 8, 8},
		{wit.F64{}, "f64", 8, 8},
		{wit.Char{}, "char", 4, 4},
		{wit.String{}, "string", 8, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := c.Calculate(tc.typ)
			if info.Size != tc.size {
				t.Errorf("size: got %d, want %d", info.Size, tc.size)
			}
			if info.Align != tc.align {
				t.Errorf("align: got %d, want %d", info.Align, tc.align)
			}
		})
	}
}

func TestCalculateRecord(t *testing.T) {
	c := NewCalculator()

	t.Run("empty", func(t *testing.T) {
		info := c.Calculate(&wit.TypeDef{Kind: &wit.Record{}})
		if info.Size != 0 {
			t.Errorf("size: got %d, want 0", info.Size)
		}
	})

	t.Run("vertex", func(t *testing.T) {
		v2 := vec2()
		vertex := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
			{Name: "pos", Type: v2},
			{Name: "uv", Type: v2},
			{Name: "col", Type: wit.U32{}},
		}}}
		info := c.Calculate(vertex)

		want := map[string]uint32{"pos": 0, "uv": 8, "col": 16}
		if diff := cmp.Diff(want, info.FieldOffs); diff != "" {
			t.Errorf("offsets (-want +got):\n%s", diff)
		}
		if info.Size != 20 {
			t.Errorf("size: got %d, want 20", info.Size)
		}
		if info.Align != 4 {
			t.Errorf("align: got %d, want 4", info.Align)
		}
	})

	t.Run("mixed_alignment", func(t *testing.T) {
		record := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
			{Name: "a", Type: wit.Bool{}},
			{Name: "b", Type: wit.F32{}},
			{Name: "c", Type: wit.U8{}},
		}}}
		info := c.Calculate(record)

		want := map[string]uint32{"a": 0, "b": 4, "c": 8}
		if diff := cmp.Diff(want, info.FieldOffs); diff != "" {
			t.Errorf("offsets (-want +got):\n%s", diff)
		}
		if info.Size != 12 {
			t.Errorf("size: got %d, want 12", info.Size)
		}
	})

	t.Run("u64_alignment", func(t *testing.T) {
		record := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{
			{Name: "a", Type: wit.U8{}},
			{Name: "b", Type: wit.U64{}},
		}}}
		info := c.Calculate(record)

		if off, _ := info.Offset("b"); off != 8 {
			t.Errorf("field b offset: got %d, want 8", off)
		}
		if info.Size != 16 {
			t.Errorf("size: got %d, want 16", info.Size)
		}
		if _, ok := info.Offset("missing"); ok {
			t.Error("unknown field should not resolve")
		}
	})
}

func TestCalculateCaches(t *testing.T) {
	c := NewCalculator()
	v2 := vec2()

	first := c.Calculate(v2)
	second := c.Calculate(v2)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached layout differs (-first +second):\n%s", diff)
	}
	if len(c.cache) != 1 {
		t.Errorf("cache entries: got %d, want 1", len(c.cache))
	}
}

func TestCalculateList(t *testing.T) {
	c := NewCalculator()

	info := c.Calculate(&wit.TypeDef{Kind: &wit.List{Type: wit.U16{}}})
	if info.Size != 8 || info.Align != 4 {
		t.Errorf("got size=%d align=%d, want 8/4", info.Size, info.Align)
	}
}

func TestCalculateTuple(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		types     []wit.Type
		wantSize  uint32
		wantAlign uint32
	}{
		{"empty", nil, 0, 1},
		{"two_f32", []wit.Type{wit.F32{}, wit.F32{}}, 8, 4},
		{"mixed", []wit.Type{wit.U8{}, wit.U64{}, wit.U8{}}, 24, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := c.Calculate(&wit.TypeDef{Kind: &wit.Tuple{Types: tc.types}})
			if info.Size != tc.wantSize {
				t.Errorf("size: got %d, want %d", info.Size, tc.wantSize)
			}
			if info.Align != tc.wantAlign {
				t.Errorf("align: got %d, want %d", info.Align, tc.wantAlign)
			}
		})
	}
}

func TestCalculateEnum(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		numCases  int
		wantSize  uint32
		wantAlign uint32
	}{
		{"1_case", 1, 1, 1},
		{"256_cases", 256, 1, 1},
		{"257_cases", 257, 2, 2},
		{"65537_cases", 65537, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cases := make([]wit.EnumCase, tc.numCases)
			for i := range cases {
				cases[i] = wit.EnumCase{Name: "case"}
			}
			info := c.Calculate(&wit.TypeDef{Kind: &wit.Enum{Cases: cases}})

			if info.Size != tc.wantSize {
				t.Errorf("size: got %d, want %d", info.Size, tc.wantSize)
			}
			if info.Align != tc.wantAlign {
				t.Errorf("align: got %d, want %d", info.Align, tc.wantAlign)
			}
		})
	}
}

func TestCalculateFlags(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name      string
		numFlags  int
		wantSize  uint32
		wantAlign uint32
	}{
		{"0_flags", 0, 0, 1},
		{"8_flags", 8, 1, 1},
		{"9_flags", 9, 2, 2},
		{"32_flags", 32, 4, 4},
		{"33_flags", 33, 8, 8},
		{"65_flags", 65, 12, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flags := make([]wit.Flag, tc.numFlags)
			for i := range flags {
				flags[i] = wit.Flag{Name: "f"}
			}
			info := c.Calculate(&wit.TypeDef{Kind: &wit.Flags{Flags: flags}})

			if info.Size != tc.wantSize {
				t.Errorf("size: got %d, want %d", info.Size, tc.wantSize)
			}
			if info.Align != tc.wantAlign {
				t.Errorf("align: got %d, want %d", info.Align, tc.wantAlign)
			}
		})
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 8, 8},
		{7, 0, 7},
		{17, 16, 32},
	}
	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}
