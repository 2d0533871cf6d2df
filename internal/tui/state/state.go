package state

// ClampCursor keeps a cursor within [0, size).
func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// PageStep is the row count a page-up/page-down jump moves by.
func PageStep(height int) int {
	if height <= 0 {
		return 10
	}
	headerLines := 6
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

// CenteredWindow returns the [start, end) slice bounds that keep the cursor
// centered in a viewport of the given height.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// NearEnd reports whether the cursor is within margin rows of the end of the
// list, the signal that the next page should be fetched.
func NearEnd(cursor, total, margin int) bool {
	if total == 0 {
		return false
	}
	return cursor >= total-margin
}
