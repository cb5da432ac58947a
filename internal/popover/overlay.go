package popover

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites pop onto base. With an anchor the popover opens below
// it, left-aligned, flipping above when there is no room; without one it is
// centered. The result is exactly width x height cells.
func Overlay(base, pop string, anchor Element, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	popLines := splitLines(pop)
	popW, popH := maxLineWidth(popLines), len(popLines)
	x, y := Place(anchor, popW, popH, width, height)
	return overlayAt(canvas, pop, x, y, width, height)
}

// Place returns the top-left cell for a popW x popH popover.
func Place(anchor Element, popW, popH, width, height int) (x, y int) {
	if anchor = present(anchor); anchor == nil {
		return max(0, (width-popW)/2), max(0, (height-popH)/2)
	}
	b := anchor.Bounds()
	x = b.X
	if x+popW > width {
		x = width - popW
	}
	y = b.Y + b.Height
	if y+popH > height {
		if above := b.Y - popH; above >= 0 {
			y = above
		} else {
			y = height - popH
		}
	}
	return max(0, x), max(0, y)
}

// Fit clips or pads s to exactly width x height cells.
func Fit(s string, width, height int) string {
	return fitCanvas(s, width, height)
}

// overlayAt writes overlay over base starting at cell (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		segment := ansi.Truncate(padRight(line, overlayWidth), max(0, width-x), "")
		pos := x + ansi.StringWidth(segment)
		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = left + segment + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(ansi.Truncate(lines[i], width, ""), width)
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		m = max(m, ansi.StringWidth(line))
	}
	return m
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
