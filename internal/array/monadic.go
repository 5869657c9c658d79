package array

// Deshape flattens the array to rank 1. The data is unchanged.
func (a *Array[T]) Deshape() {
	a.shape = Shape{len(a.data)}
}

// First drops the leading axis, keeping only the first row.
func (a *Array[T]) First(env *Env) (*Array[T], error) {
	if err := a.checkRows(env, "first"); err != nil {
		return nil, err
	}
	rowLen := a.RowLen()
	data := make([]T, rowLen)
	copy(data, a.data[:rowLen])
	return &Array[T]{shape: a.shape[1:].Clone(), data: data}, nil
}

// Last drops the leading axis, keeping only the last row.
func (a *Array[T]) Last(env *Env) (*Array[T], error) {
	if err := a.checkRows(env, "last"); err != nil {
		return nil, err
	}
	rowLen := a.RowLen()
	data := make([]T, rowLen)
	copy(data, a.data[len(a.data)-rowLen:])
	return &Array[T]{shape: a.shape[1:].Clone(), data: data}, nil
}

func (a *Array[T]) checkRows(env *Env, op string) error {
	switch {
	case len(a.shape) == 0:
		return env.Errorf(DomainError, "Cannot take %s of a scalar", op)
	case a.shape[0] == 0:
		return env.Errorf(DomainError, "Cannot take %s of an empty array", op)
	}
	return nil
}

// Reverse reverses the order of the rows in place.
func (a *Array[T]) Reverse() {
	if len(a.shape) == 0 || len(a.data) == 0 {
		return
	}
	rowCount := a.RowCount()
	rowLen := a.RowLen()
	for i := range rowCount / 2 {
		// i < rowCount/2, so left lies wholly in the first half and
		// right wholly in the second: the blocks never overlap.
		left := a.data[i*rowLen : (i+1)*rowLen]
		j := rowCount - 1 - i
		right := a.data[j*rowLen : (j+1)*rowLen]
		swapBlocks(left, right)
	}
}

// swapBlocks exchanges two equal-length, disjoint slices element by element.
func swapBlocks[T any](left, right []T) {
	for k := range left {
		left[k], right[k] = right[k], left[k]
	}
}

// Transpose moves the leading axis to the end.
func (a *Array[T]) Transpose() {
	if len(a.shape) < 2 {
		return
	}
	if a.shape[0] == 0 {
		a.shape = rotateLeft(a.shape)
		return
	}
	// Rows become columns: (rowCount, rowLen) -> (rowLen, rowCount).
	a.data = transposeFlat(a.data, a.RowCount(), a.RowLen())
	a.shape = rotateLeft(a.shape)
}

// InverseTranspose moves the trailing axis to the front. It undoes Transpose.
func (a *Array[T]) InverseTranspose() {
	if len(a.shape) < 2 {
		return
	}
	if a.shape[0] == 0 {
		a.shape = rotateRight(a.shape)
		return
	}
	colLen := a.shape[len(a.shape)-1]
	colCount := a.shape[:len(a.shape)-1].NumElements()
	a.data = transposeFlat(a.data, colCount, colLen)
	a.shape = rotateRight(a.shape)
}

// transposeFlat treats data as a rows×cols matrix and returns its transpose.
func transposeFlat[T any](data []T, rows, cols int) []T {
	out := make([]T, 0, len(data))
	for j := range cols {
		for i := range rows {
			out = append(out, data[i*cols+j])
		}
	}
	return out
}

func rotateLeft(s Shape) Shape {
	return append(s[1:].Clone(), s[0])
}

func rotateRight(s Shape) Shape {
	return append(Shape{s[len(s)-1]}, s[:len(s)-1]...)
}
