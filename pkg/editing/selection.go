package editing

// Selection describes the caret and the optional selection anchor.
// When there is no anchor, Base equals Extent.
type Selection struct {
	// Base is the fixed end of the selection (the anchor).
	Base int
	// Extent is the moving end of the selection (the caret).
	Extent int
}

// Collapsed returns a selection with no extent at offset.
func Collapsed(offset int) Selection {
	return Selection{Base: offset, Extent: offset}
}

// Start returns the smaller of Base and Extent.
func (s Selection) Start() int {
	return min(s.Base, s.Extent)
}

// End returns the larger of Base and Extent.
func (s Selection) End() int {
	return max(s.Base, s.Extent)
}

// Len returns the number of selected characters.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// IsCollapsed reports whether the selection has no length (just a caret).
func (s Selection) IsCollapsed() bool {
	return s.Base == s.Extent
}
