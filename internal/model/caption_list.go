package model

// CaptionList holds captions in insertion order. Overlapping intervals are
// allowed; the matcher resolves them by list order.
//
// Mutating methods return a new list and never touch the receiver's backing
// array, so a snapshot handed to the UI stays stable.
type CaptionList struct {
	items []Caption
}

// NewCaptionList creates a list holding copies of the given captions
func NewCaptionList(captions ...Caption) CaptionList {
	items := make([]Caption, len(captions))
	copy(items, captions)
	return CaptionList{items: items}
}

// Len returns the number of captions
func (l CaptionList) Len() int {
	return len(l.items)
}

// Items returns a copy of the captions in insertion order
func (l CaptionList) Items() []Caption {
	items := make([]Caption, len(l.items))
	copy(items, l.items)
	return items
}

// At returns the caption at index i
func (l CaptionList) At(i int) (Caption, bool) {
	if i < 0 || i >= len(l.items) {
		return Caption{}, false
	}
	return l.items[i], true
}

// Append returns a new list with c added at the end
func (l CaptionList) Append(c Caption) CaptionList {
	items := make([]Caption, len(l.items), len(l.items)+1)
	copy(items, l.items)
	return CaptionList{items: append(items, c)}
}

// Remove returns a new list without the caption with the given id. The
// second result is false when no caption had that id; the list is then
// returned unchanged.
func (l CaptionList) Remove(id string) (CaptionList, bool) {
	for i, c := range l.items {
		if c.ID != id {
			continue
		}
		items := make([]Caption, 0, len(l.items)-1)
		items = append(items, l.items[:i]...)
		items = append(items, l.items[i+1:]...)
		return CaptionList{items: items}, true
	}
	return l, false
}

// Active returns the first caption, in insertion order, whose interval
// contains position t.
func (l CaptionList) Active(t float64) (Caption, bool) {
	for _, c := range l.items {
		if c.Contains(t) {
			return c, true
		}
	}
	return Caption{}, false
}

// ActiveText returns the text of the active caption at t, or "" when none
// matches.
func (l CaptionList) ActiveText(t float64) string {
	if c, ok := l.Active(t); ok {
		return c.Text
	}
	return ""
}
