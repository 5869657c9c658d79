package array

import (
	"encoding/binary"
	"math"
)

// Classify assigns each row the index at which its content was first seen.
// The first distinct row is class 0, the next distinct row class 1, and so on.
func (a *Array[T]) Classify(env *Env) ([]int, error) {
	if len(a.shape) == 0 {
		return nil, env.Errorf(DomainError, "Cannot classify a rank-0 array")
	}
	classes := make(map[string]int)
	classified := make([]int, 0, a.RowCount())
	var key []byte
	for _, row := range a.Rows() {
		key = rowKey(key[:0], row.data)
		class, ok := classes[string(key)]
		if !ok {
			class = len(classes)
			classes[string(key)] = class
		}
		classified = append(classified, class)
	}
	return classified, nil
}

// Deduplicate keeps only the first occurrence of each distinct row, in
// order, shrinking the leading axis. Scalars are left untouched.
func (a *Array[T]) Deduplicate() {
	if len(a.shape) == 0 {
		return
	}
	seen := make(map[string]struct{})
	deduped := make([]T, 0, len(a.data))
	kept := 0
	var key []byte
	for _, row := range a.Rows() {
		key = rowKey(key[:0], row.data)
		if _, ok := seen[string(key)]; ok {
			continue
		}
		seen[string(key)] = struct{}{}
		deduped = append(deduped, row.data...)
		kept++
	}
	shape := a.shape.Clone()
	shape[0] = kept
	a.shape = shape
	a.data = deduped
}

// rowKey appends a canonical encoding of row to dst. Two rows have equal
// keys exactly when CompareRows reports them equal.
func rowKey[T Element](dst []byte, row []T) []byte {
	for _, v := range row {
		switch x := any(v).(type) {
		case float64:
			switch {
			case math.IsNaN(x):
				x = math.NaN()
			case x == 0:
				x = 0 // fold -0
			}
			dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
		case uint8:
			dst = append(dst, x)
		case rune:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(x))
		case Func:
			dst = binary.LittleEndian.AppendUint64(dst, x.ID)
		}
	}
	return dst
}
