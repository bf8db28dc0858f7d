package content

import (
	"fmt"
	"strings"
)

const wordsPerMinute = 200

// ReadingTime estimates how long body takes to read, rounded up to whole
// minutes, e.g. "3 min read".
func ReadingTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}
