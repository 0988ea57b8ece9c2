package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm names, in the order the harness runs them.
const (
	NameSelection          = "selection"
	NameRecursiveSelection = "recursive-selection"
	NameInsertion          = "insertion"
	NameMerge              = "merge"
	NameBubble             = "bubble"
	NameQuick              = "quick"
)

// ErrUnknownAlgorithm is returned by Lookup for names not in the registry.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm is a registered integer sort.
type Algorithm struct {
	Name  string
	Label string
	Sort  Func[int]
}

// Algorithms returns the six algorithms in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: NameSelection, Label: "Selection sort", Sort: Selection[int]},
		{Name: NameRecursiveSelection, Label: "Recursive selection sort", Sort: RecursiveSelection[int]},
		{Name: NameInsertion, Label: "Insertion sort", Sort: Insertion[int]},
		{Name: NameMerge, Label: "Merge sort", Sort: Merge[int]},
		{Name: NameBubble, Label: "Bubble sort", Sort: Bubble[int]},
		{Name: NameQuick, Label: "Quicksort", Sort: Quick[int]},
	}
}

// Names returns the registered algorithm names in benchmark order.
func Names() []string {
	algs := Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	return names
}

// Lookup resolves an algorithm by name, ignoring case and surrounding space.
func Lookup(name string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if a.Name == want {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// Select resolves a list of names, keeping benchmark order and dropping
// duplicates. An empty list selects every algorithm.
func Select(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return Algorithms(), nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		a, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		wanted[a.Name] = true
	}
	var out []Algorithm
	for _, a := range Algorithms() {
		if wanted[a.Name] {
			out = append(out, a)
		}
	}
	return out, nil
}
