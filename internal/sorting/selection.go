package sorting

import "cmp"

// Selection sorts t[:n] by repeatedly moving the minimum of the unsorted
// suffix to its front. O(n²) comparisons in every case; not stable.
func Selection[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameSelection, len(t), n); err != nil {
		return t, err
	}
	if n < 2 {
		return t, nil
	}
	for i := range n - 1 {
		imin := i
		for j := i + 1; j < n; j++ {
			if cmp.Less(t[j], t[imin]) {
				imin = j
			}
		}
		if imin != i {
			t[i], t[imin] = t[imin], t[i]
		}
	}
	return t, nil
}

// RecursiveSelection sorts t[:n] by moving the maximum of t[:n] to n-1 and
// repeating on the first n-1 elements. The tail recursion is unrolled into
// a loop over the shrinking bound, so large inputs do not grow the stack.
func RecursiveSelection[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameRecursiveSelection, len(t), n); err != nil {
		return t, err
	}
	for m := n; m >= 2; m-- {
		last := m - 1
		imax := last
		for i := range last {
			if cmp.Less(t[imax], t[i]) {
				imax = i
			}
		}
		if imax != last {
			t[imax], t[last] = t[last], t[imax]
		}
	}
	return t, nil
}
