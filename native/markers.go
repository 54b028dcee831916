package native

import (
	"maps"
	"slices"
)

// errorMarkers maps a 1-based line number to an error message.
type errorMarkers struct {
	handle  Handle
	entries map[int32]string
}

// NewErrorMarkers allocates an empty marker set. The caller releases it with
// DeleteErrorMarkers.
func (l *Library) NewErrorMarkers() Handle {
	m := &errorMarkers{entries: make(map[int32]string)}
	m.handle = l.newObject(m)
	return m.handle
}

// DeleteErrorMarkers releases a marker set.
func (l *Library) DeleteErrorMarkers(h Handle) {
	deref[errorMarkers](l, h)
	l.dropObject(h)
}

// ErrorMarkersInsert adds a marker for line. An existing marker for the same
// line is kept.
func (l *Library) ErrorMarkersInsert(h Handle, line int32, message string) {
	m := deref[errorMarkers](l, h)
	if _, ok := m.entries[line]; !ok {
		m.entries[line] = message
	}
}

// ErrorMarkersClear removes every marker.
func (l *Library) ErrorMarkersClear(h Handle) {
	clear(deref[errorMarkers](l, h).entries)
}

// ErrorMarkersSize returns the number of markers.
func (l *Library) ErrorMarkersSize(h Handle) uint32 {
	return uint32(len(deref[errorMarkers](l, h).entries))
}

func (m *errorMarkers) lines() []int32 {
	return slices.Sorted(maps.Keys(m.entries))
}
