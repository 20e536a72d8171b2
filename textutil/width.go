package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// StringWidth returns the monospace display width of s in terminal cells,
// measured over grapheme clusters. East Asian wide characters count as two
// cells; combining marks count as zero.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// DisplayWidth returns the display width of s with tab expansion: each tab
// advances to the next tab stop of the given width. s must be a single line.
func DisplayWidth(s string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	col := 0
	for {
		i := strings.IndexByte(s, '\t')
		if i < 0 {
			return col + uniseg.StringWidth(s)
		}
		col += uniseg.StringWidth(s[:i])
		col = (col/tabWidth + 1) * tabWidth
		s = s[i+1:]
	}
}
