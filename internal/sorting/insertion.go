package sorting

import "cmp"

// Insertion sorts t[:n] by inserting each element into the sorted prefix
// before it. O(n²) worst case, O(n) on already sorted input. Stable.
func Insertion[T cmp.Ordered](t []T, n int) ([]T, error) {
	if err := checkLength(NameInsertion, len(t), n); err != nil {
		return t, err
	}
	for i := 1; i < n; i++ {
		v := t[i]
		j := i - 1
		for j >= 0 && cmp.Less(v, t[j]) {
			t[j+1] = t[j]
			j--
		}
		t[j+1] = v
	}
	return t, nil
}
