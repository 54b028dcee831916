// Package layout computes the native layout of engine element kinds.
//
// Element kinds are described as WIT types. The calculator derives size,
// alignment and field offsets from them using C-like rules, which is how the
// engine lays out its records in linear memory.
//
// # Layout Rules
//
//   - Primitives: size equals alignment (bool=1, u16=2, u32=4, f32=4, etc.)
//   - Records: fields laid out sequentially with padding for alignment
//   - Tuples: like records with positional fields
//   - Lists/Strings: (pointer, length) pair, contents elsewhere
//
// # Usage
//
//	calc := layout.NewCalculator()
//	info := calc.Calculate(vertexType)
//	// info.Size, info.Align, info.FieldOffs available
//
// Layout is a property of the type: results are cached per *wit.TypeDef.
package layout
