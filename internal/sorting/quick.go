package sorting

import "cmp"

// span is a half-open index range [lo, hi) awaiting partitioning.
type span struct {
	lo, hi int
}

// Quick sorts t[:n] with Lomuto partitioning around the last element of
// each range. The pivot choice is deterministic, so sorted or reversed
// inputs hit the O(n²) worst case. Ranges are kept on an explicit stack;
// the larger side is deferred and the smaller side handled first, which
// keeps the stack at O(log n) entries.
func Quick[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameQuick, len(t), n); err != nil {
		return t, err
	}
	if n < 2 {
		return t, nil
	}

	stack := []span{{lo: 0, hi: n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := s.lo, s.hi
		for hi-lo > 1 {
			p := partition(t, lo, hi)
			if p-lo < hi-p-1 {
				stack = append(stack, span{lo: p + 1, hi: hi})
				hi = p
			} else {
				stack = append(stack, span{lo: lo, hi: p})
				lo = p + 1
			}
		}
	}
	return t, nil
}

// partition rearranges t[lo:hi] so every element <= t[hi-1] precedes it,
// moves the pivot right after them and returns its final index.
func partition[T cmp.Ordered](t []T, lo, hi int) int {
	pivot := t[hi-1]
	p := lo
	for k := lo; k < hi-1; k++ {
		if !cmp.Less(pivot, t[k]) {
			t[k], t[p] = t[p], t[k]
			p++
		}
	}
	t[hi-1], t[p] = t[p], t[hi-1]
	return p
}
