package director

import (
	"sort"

	"github.com/ivlev/focuscursor/internal/geom"
)

// ReadingOrder sorts items top to bottom, then left to right within a row.
// Screen space is assumed: y grows downward. Items are sorted by y and a new
// row starts whenever the vertical gap to the previous item exceeds rowSlack.
func ReadingOrder[T any](items []T, pos func(T) geom.Vec2, rowSlack float64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := pos(items[i]), pos(items[j])
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	start := 0
	for i := 1; i <= len(items); i++ {
		if i < len(items) && pos(items[i]).Y-pos(items[i-1]).Y <= rowSlack {
			continue
		}
		row := items[start:i]
		sort.SliceStable(row, func(a, b int) bool {
			return pos(row[a]).X < pos(row[b]).X
		})
		start = i
	}
}
