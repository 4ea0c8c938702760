package sort

// Sorter is the minimal interface a sequence must satisfy to be sorted in
// place: a fixed length plus index-based compare and swap. It matches the
// standard library's sort.Interface, so its adapters work here too.
type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Bubble sorts data in place by repeatedly scanning adjacent pairs and
// swapping the out-of-order ones. Each pass floats the largest unsorted
// element to the end, so the scanned range shrinks by one per pass, and a
// pass with no swaps ends the sort early.
func Bubble(data Sorter) {
	for end := data.Len() - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Selection sorts data in place by selecting the minimum of the unsorted
// suffix and swapping it into place, one position at a time. It performs at
// most Len()-1 swaps; the swap is skipped when the minimum is already in
// place. Not stable.
func Selection(data Sorter) {
	n := data.Len()
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if data.Less(j, min) {
				min = j
			}
		}
		if min != i {
			data.Swap(i, min)
		}
	}
}

// Insertion sorts data in place by inserting each element into the sorted
// prefix before it, moving it left while the left neighbor is strictly
// greater. Equal elements keep their relative order.
func Insertion(data Sorter) {
	n := data.Len()
	for i := 1; i < n; i++ {
		for j := i; j > 0 && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}
