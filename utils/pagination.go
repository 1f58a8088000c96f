package utils

import "math"

// MaxPage bounds page numbers accepted by paginated reads.
const MaxPage = 1_000_000

// PageInRange reports whether page is at most MaxPage and its offset
// (page-1)*limit fits in an int. Both arguments must be at least 1.
func PageInRange(page, limit int) bool {
	return page <= MaxPage && page-1 <= math.MaxInt/limit
}
