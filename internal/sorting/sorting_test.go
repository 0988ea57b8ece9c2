package sorting

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/MeKo-Tech/sortbench/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithms_LiteralScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{name: "reference demo", input: []int{2, 5, 1, 2, 3, 5}, want: []int{1, 2, 2, 3, 5, 5}},
		{name: "three elements", input: []int{3, 1, 2}, want: []int{1, 2, 3}},
		{name: "empty", input: []int{}, want: []int{}},
		{name: "single", input: []int{7}, want: []int{7}},
		{name: "all equal", input: []int{5, 5, 5, 5}, want: []int{5, 5, 5, 5}},
		{name: "front pair unordered", input: []int{2, 1, 3, 4}, want: []int{1, 2, 3, 4}},
		{name: "max not last", input: []int{2, 1, 3}, want: []int{1, 2, 3}},
		{name: "descending", input: []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "negatives", input: []int{0, -3, 7, -3, 2}, want: []int{-3, -3, 0, 2, 7}},
	}

	for _, alg := range Algorithms() {
		for _, tt := range tests {
			t.Run(alg.Name+"/"+tt.name, func(t *testing.T) {
				in := slices.Clone(tt.input)
				got, err := alg.Sort(in, len(in))
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestAlgorithms_Fixtures(t *testing.T) {
	cases := testutil.LoadSortCases(t)
	for _, alg := range Algorithms() {
		for _, c := range cases {
			t.Run(alg.Name+"/"+c.Name, func(t *testing.T) {
				got, err := alg.Sort(c.Clone(), len(c.Input))
				require.NoError(t, err)
				assert.Equal(t, c.Expected, got)
			})
		}
	}
}

func TestAlgorithms_ReturnSameArray(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			in := []int{4, 3, 2, 1}
			got, err := alg.Sort(in, len(in))
			require.NoError(t, err)
			require.Len(t, got, 4)
			assert.Same(t, &in[0], &got[0], "sort must work in place")
		})
	}
}

func TestAlgorithms_NilInput(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			got, err := alg.Sort(nil, 0)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestAlgorithms_PrefixOnly(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			in := []int{9, 4, 7, 1, 0, -1, -2}
			got, err := alg.Sort(in, 4)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 4, 7, 9, 0, -1, -2}, got)
		})
	}
}

func TestAlgorithms_LengthValidation(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.Name+"/negative", func(t *testing.T) {
			in := []int{3, 2, 1}
			got, err := alg.Sort(in, -1)
			require.ErrorIs(t, err, ErrNegativeLength)
			assert.Equal(t, []int{3, 2, 1}, got, "input must be left untouched")

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, alg.Name, inputErr.Algorithm)
			assert.Equal(t, -1, inputErr.Length)
			assert.Equal(t, 3, inputErr.Size)
		})

		t.Run(alg.Name+"/too long", func(t *testing.T) {
			in := []int{3, 2, 1}
			got, err := alg.Sort(in, 4)
			require.ErrorIs(t, err, ErrLengthOutOfRange)
			assert.Equal(t, []int{3, 2, 1}, got)
			assert.Contains(t, err.Error(), alg.Name)
			assert.Contains(t, err.Error(), "invalid length 4")
		})
	}
}

func TestGenericElementTypes(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		sorts := []Func[string]{Selection[string], RecursiveSelection[string], Insertion[string], Merge[string], Bubble[string], Quick[string]}
		for _, sort := range sorts {
			in := []string{"pear", "apple", "fig", "apple"}
			got, err := sort(in, len(in))
			require.NoError(t, err)
			assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, got)
		}
	})

	t.Run("floats with NaN", func(t *testing.T) {
		sorts := []Func[float64]{Selection[float64], RecursiveSelection[float64], Insertion[float64], Merge[float64], Bubble[float64], Quick[float64]}
		for _, sort := range sorts {
			in := []float64{3, math.NaN(), 1.5, -2}
			got, err := sort(in, len(in))
			require.NoError(t, err)
			assert.True(t, math.IsNaN(got[0]), "NaN orders first")
			assert.Equal(t, []float64{-2, 1.5, 3}, got[1:])
		}
	})
}

func TestPartition(t *testing.T) {
	in := []int{3, 1, 2}
	p := partition(in, 0, len(in))
	assert.Equal(t, 1, p)
	assert.Equal(t, 2, in[p])
	for _, v := range in[:p] {
		assert.LessOrEqual(t, v, 2)
	}
	for _, v := range in[p+1:] {
		assert.Greater(t, v, 2)
	}
}

func TestPartition_AllLessOrEqual(t *testing.T) {
	in := []int{2, 1, 3}
	p := partition(in, 0, len(in))
	assert.Equal(t, 2, p)
	assert.Equal(t, []int{2, 1, 3}, in)
}

func TestPartition_SubRange(t *testing.T) {
	in := []int{100, 5, 9, 1, 7, -100}
	p := partition(in, 1, 5)
	assert.Equal(t, 100, in[0])
	assert.Equal(t, -100, in[5])
	assert.Equal(t, 7, in[p])
	assert.Equal(t, 3, p)
}

func TestQuick_AdversarialInputs(t *testing.T) {
	// Sorted and reversed inputs drive the last-element pivot to its worst case.
	const n = 10000
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)

	for name, in := range map[string][]int{"sorted": sorted, "reversed": reversed} {
		t.Run(name, func(t *testing.T) {
			got, err := Quick(slices.Clone(in), n)
			require.NoError(t, err)
			assert.True(t, slices.IsSorted(got))
		})
	}
}

func TestRecursiveSelection_LargeInputDoesNotRecurse(t *testing.T) {
	const n = 5000
	in := make([]int, n)
	for i := range in {
		in[i] = n - i
	}
	got, err := RecursiveSelection(in, n)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(got))
}

func TestMerge_OddSplits(t *testing.T) {
	for n := range 40 {
		in := make([]int, n)
		for i := range in {
			in[i] = (i * 7919) % 13
		}
		want := slices.Clone(in)
		slices.Sort(want)

		got, err := Merge(in, n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestInputError_Unwrap(t *testing.T) {
	err := checkLength("quick", 2, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthOutOfRange))
	assert.False(t, errors.Is(err, ErrNegativeLength))
	assert.NoError(t, checkLength("quick", 2, 2))
	assert.NoError(t, checkLength("quick", 0, 0))
}
