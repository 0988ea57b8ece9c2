package sorting

import "cmp"

// Bubble sorts t[:n] with adjacent swaps. It always runs the full n-1
// passes, even when a pass makes no swap.
func Bubble[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameBubble, len(t), n); err != nil {
		return t, err
	}
	for i := range max(n-1, 0) {
		for j := range n - 1 - i {
			if cmp.Less(t[j+1], t[j]) {
				t[j], t[j+1] = t[j+1], t[j]
			}
		}
	}
	return t, nil
}
