package sorting

import (
	"cmp"

	"github.com/MeKo-Tech/sortbench/internal/mempool"
)

// Merge sorts t[:n] top-down: split at n/2, sort both halves, merge them.
// On equal heads the merge takes from the right half. One scratch buffer
// of n elements is borrowed for the whole sort; recursion depth is
// ceil(log2 n).
func Merge[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameMerge, len(t), n); err != nil {
		return t, err
	}
	if n < 2 {
		return t, nil
	}
	buf := mempool.Get[T](n)
	defer mempool.Put(buf)

	mergeSort(t[:n], buf)
	return t, nil
}

// mergeSort sorts t using buf (same length) as scratch space.
func mergeSort[T cmp.Ordered](t, buf []T) {
	n := len(t)
	if n < 2 {
		return
	}
	p := n / 2
	mergeSort(t[:p], buf[:p])
	mergeSort(t[p:], buf[p:])

	copy(buf, t)
	merge(buf[:p], buf[p:], t)
}

// merge writes the merge of the sorted runs left and right into dst.
func merge[T cmp.Ordered](left, right, dst []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp.Less(left[i], right[j]) {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	// One run is exhausted; the other is copied over verbatim.
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
