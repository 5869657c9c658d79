package array

import (
	"slices"

	"github.com/born-ml/arrays/internal/parallel"
)

// Rise returns the permutation of row indices that sorts the rows in
// ascending order.
func (a *Array[T]) Rise(env *Env) ([]int, error) {
	return a.sortIndices(env, "rise", 1)
}

// Fall returns the permutation of row indices that sorts the rows in
// descending order.
func (a *Array[T]) Fall(env *Env) ([]int, error) {
	return a.sortIndices(env, "fall", -1)
}

func (a *Array[T]) sortIndices(env *Env, op string, dir int) ([]int, error) {
	if len(a.shape) == 0 {
		return nil, env.Errorf(DomainError, "Cannot %s a scalar", op)
	}
	if len(a.data) == 0 {
		return []int{}, nil
	}
	rowLen := a.RowLen()
	row := func(i int) []T {
		return a.data[i*rowLen : (i+1)*rowLen]
	}
	indices := make([]int, a.RowCount())
	for i := range indices {
		indices[i] = i
	}
	sortIndices(indices, func(i, j int) int {
		return dir * CompareRows(row(i), row(j))
	}, env.ParallelConfig())
	return indices, nil
}

// sortIndices sorts idx by cmp. Large inputs are cut into runs that are
// sorted concurrently and then merged pairwise. cmp only reads the rows.
func sortIndices(idx []int, cmp func(i, j int) int, cfg parallel.Config) {
	n := len(idx)
	run := cfg.ChunkSize(n)
	if !cfg.Enabled || run >= n {
		slices.SortStableFunc(idx, cmp)
		return
	}

	parallel.ForRange(n, func(start, end int) {
		slices.SortStableFunc(idx[start:end], cmp)
	}, cfg)

	src, dst := idx, make([]int, n)
	for width := run; width < n; width *= 2 {
		pairs := (n + 2*width - 1) / (2 * width)
		parallel.For(pairs, func(p int) {
			lo := p * 2 * width
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		}, cfg)
		src, dst = dst, src
	}
	if &src[0] != &idx[0] {
		copy(idx, src)
	}
}

// mergeRuns merges two sorted runs into dst, taking from left on ties.
func mergeRuns(dst, left, right []int, cmp func(i, j int) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
