package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// MountFunc places an overlay on top of a base view sized width x height.
// It is the only way a dialog reaches the screen; dialogs never render
// inside the subtree that owns them.
type MountFunc func(base, overlay string, width, height int) string

// Mount centres overlay over base. An empty overlay leaves base untouched
// apart from fitting it to the canvas.
func Mount(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitCanvas(base, width, height)
	if overlay == "" {
		return canvas
	}
	lines := splitToLines(overlay, 0)
	w, h := maxLineWidth(lines), len(lines)
	x := max((width-w)/2, 0)
	y := max((height-h)/2, 0)
	return overlayAt(canvas, overlay, x, y, width, height)
}

// overlayAt writes overlay into base with its top-left corner at column x,
// row y. Rows that fall outside the canvas are dropped.
func overlayAt(base, overlay string, x, y, width, height int) string {
	rows := splitToLines(base, height)
	cardRows := splitToLines(overlay, 0)
	cardWidth := maxLineWidth(cardRows)
	for i, line := range cardRows {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		target := padRightANSI(rows[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		mid := padRightANSI(line, cardWidth)
		right := dropColumns(target, x+cardWidth)
		rows[row] = padRightANSI(left+mid+right, width)
	}
	return strings.Join(rows, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits s on newlines. A positive height pads or cuts the
// result to exactly that many rows.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
