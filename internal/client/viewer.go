package client

import cl "photo-album/pkg/catelog"

// Viewer steps through the loaded media list one item at a time. Stepping
// stops at either end; it does not wrap.
type Viewer struct {
	items []cl.Media
	index int
}

// NewViewer opens the item with id in items. It returns false if the item is
// not in the list.
func NewViewer(items []cl.Media, id string) (*Viewer, bool) {
	for i, m := range items {
		if m.ID == id {
			return &Viewer{items: items, index: i}, true
		}
	}
	return nil, false
}

// Current returns the item on display.
func (v *Viewer) Current() cl.Media {
	return v.items[v.index]
}

func (v *Viewer) HasPrev() bool { return v.index > 0 }

func (v *Viewer) HasNext() bool { return v.index < len(v.items)-1 }

// Prev moves to the previous item, reporting whether it moved.
func (v *Viewer) Prev() bool {
	if !v.HasPrev() {
		return false
	}
	v.index--
	return true
}

// Next moves to the next item, reporting whether it moved.
func (v *Viewer) Next() bool {
	if !v.HasNext() {
		return false
	}
	v.index++
	return true
}

// Key applies a navigation key. It returns false when the key closes the
// viewer.
func (v *Viewer) Key(key string) bool {
	switch key {
	case "ArrowLeft", "left", "p", "h":
		v.Prev()
	case "ArrowRight", "right", "n", "l":
		v.Next()
	case "Escape", "esc", "q":
		return false
	}
	return true
}
