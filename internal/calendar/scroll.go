package calendar

// YearColumns is the width of the year grid in cells.
const YearColumns = 4

// MonthColumns is the width of the month grid in cells.
const MonthColumns = 3

// Scroller is a viewport that can jump to a vertical offset.
type Scroller interface {
	ScrollTo(offset int)
}

// LayoutMetrics measures the year grid once it is shown. ok is false while
// nothing has been laid out yet.
type LayoutMetrics func() (rowHeight, viewportHeight int, ok bool)

// CenterOffset is the scroll offset that puts the row holding index in the
// middle of the viewport. It never goes negative.
func CenterOffset(index, columns, rowHeight, viewportHeight int) int {
	if index < 0 || columns <= 0 || rowHeight <= 0 {
		return 0
	}
	row := index / columns
	visibleRows := viewportHeight / rowHeight
	return max(0, (row-visibleRows/2)*rowHeight)
}
