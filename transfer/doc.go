// Package transfer moves values between host and native representations.
//
// A [Codec] describes one value kind: its native layout as a WIT type and the
// two conversions between a Go value and bytes in linear memory. A [Scope] is
// one LIFO frame of the engine's scratch stack. [Wrap] places a temporary
// native copy of a host value in the scope and, when the scope exits, copies
// the native value back into the host value exactly once.
//
// # Usage
//
//	s := transfer.Enter(nil)
//	defer s.Exit()
//	ptr := transfer.Wrap(s, transfer.Float32, &value)
//	changed := boundary.SliderFloat(s.String("speed"), ptr, 0, 10, 0)
//
// Write-back runs on every exit path, including panics, as long as Exit is
// deferred. A nil host value yields a null pointer; nothing is read or
// written for it.
//
// # Allocation
//
// Temporaries come from the scratch stack. When it is exhausted the scope
// falls back to heap allocations, which it tracks and frees on Exit.
package transfer
