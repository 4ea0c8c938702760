package sort

import (
	"strconv"
	"strings"
)

// String renders the elements space separated, the way the classic
// print-before-and-after sorting demos show an array.
func (p IntArray) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
