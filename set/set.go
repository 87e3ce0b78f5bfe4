// Package set provides primitives for inserting distinct values into ordered sets.
package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Slice must be sorted in ascending order.
type Slice[T constraints.Ordered] []T

// Of returns the distinct values of xs as a new Slice; xs is not modified.
func Of[T constraints.Ordered](xs ...T) Slice[T] {
	a := make(Slice[T], 0, len(xs))
	for _, x := range xs {
		a.Insert(x)
	}
	return a
}

// Insert x in place if not exists; returns x index and true if inserted.
// The slice must be sorted in ascending order.
func (a *Slice[T]) Insert(x T) (i int, ok bool) {
	i = a.search(x)
	if ok = i == len(*a) || (*a)[i] != x; ok {
		*a = append(*a, *new(T))
		copy((*a)[i+1:], (*a)[i:])
		(*a)[i] = x
	}
	return
}

func (a Slice[T]) Has(x T) bool {
	i := a.search(x)
	return !(i == len(a) || a[i] != x)
}

// Missing returns the values of want not in a, in the order given.
func (a Slice[T]) Missing(want ...T) []T {
	var m []T
	for _, x := range want {
		if !a.Has(x) {
			m = append(m, x)
		}
	}
	return m
}

func (a Slice[T]) search(x T) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// Filter without allocating.
func Filter[T constraints.Ordered](a *[]T) {
	b := Slice[T]((*a)[:0])
	for _, x := range *a {
		b.Insert(x)
	}
	*a = b
}
