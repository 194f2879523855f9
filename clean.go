package dtime

import "strings"

// Clean strips leading blanks, then one leading and one trailing double
// quote. The quotes are removed independently of each other.
func Clean(input string) string {
	s := strings.TrimLeft(input, " \t")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}
