package formula

import "github.com/goplus/vspec/pkgs/variant"

// Matrix enumerates every complete assignment over a list of variants.
type Matrix struct {
	Variants []string
}

// Matrix returns the matrix over the formula's variants in declaration order.
func (f *Formula) Matrix() Matrix {
	names := make([]string, 0, len(f.variants))
	for _, v := range f.variants {
		names = append(names, v.Name)
	}
	return Matrix{Variants: names}
}

// Combinations returns all assignments of the matrix. The first variant
// varies slowest and false comes before true, so the order is stable.
// A matrix without variants has exactly one, empty, assignment.
func (m *Matrix) Combinations() []variant.Assignment {
	result := []variant.Assignment{{}}
	for _, name := range m.Variants {
		next := make([]variant.Assignment, 0, len(result)*2)
		for _, prev := range result {
			for _, v := range []bool{false, true} {
				a := prev.Clone()
				a[name] = v
				next = append(next, a)
			}
		}
		result = next
	}
	return result
}

// CombinationCount returns the number of assignments Combinations yields.
func (m *Matrix) CombinationCount() int {
	return 1 << len(m.Variants)
}
