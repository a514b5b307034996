// Package teamsize derives a numeric member capacity from the free-text
// "preferred team size" a group creator typed ("4 members", "3-5", "four").
package teamsize

import (
	"regexp"
	"strconv"
)

var firstInt = regexp.MustCompile(`\d+`)

// Parse extracts the first integer found in the text. ok is false when the
// text holds no digits, which callers treat as "no cap": the group can
// never be reported full.
func Parse(s string) (int, bool) {
	m := firstInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
