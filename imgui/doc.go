// Package imgui is the typed host wrapper around the engine boundary.
//
// Every native object kind has its own Go type, so a handle of one kind
// cannot be passed where another is expected. Values that widgets edit in
// place (bools, numbers, vectors, colors, text) are copied into native
// temporaries for the duration of one call and copied back when it returns.
//
// # Ownership
//
// Objects owned by a context (draw lists, draw data, draw commands, IO,
// style, drag and drop payloads, the default font atlas) are released with
// the context. Objects created with a New function are owned by the caller
// and must be released with Delete; the With helpers scope that:
//
//	imgui.WithFontConfig(func(cfg imgui.FontConfig) {
//	    cfg.SetMergeMode(true)
//	    atlas.AddFontDefaultV(cfg)
//	})
//
// # Buffers
//
// Buffer accessors return descriptors of engine memory without copying.
// [Bytes] and [View] alias those descriptors. Both are valid until the next
// frame starts or linear memory grows, whichever comes first.
//
// # Current Context
//
// The current context is process-wide state. Calls that act on "the current
// context" read it at call time; [Context.Use] makes a context current for
// the duration of a function and restores the previous one afterwards.
package imgui
