package ui

// DetermineLayoutMode reports whether the terminal fits the display and,
// if so, whether there is room for the key help line under it.
func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < CanvasCols || rows < CanvasRows {
		return LayoutTooSmall
	}
	if rows > CanvasRows {
		return LayoutWide
	}
	return LayoutCompact
}
