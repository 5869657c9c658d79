package array

// FillToShape grows the array in place to target, padding with fill.
//
// Unit axes are prepended until the rank matches target. Every element whose
// multi-index lies inside the old shape keeps its value; every new position
// receives fill. Axes of target smaller than the current shape truncate.
// target must have at least the array's rank.
func (a *Array[T]) FillToShape(target Shape, fill T) {
	for len(a.shape) < len(target) {
		a.shape = append(Shape{1}, a.shape...)
	}
	if a.shape.Equal(target) {
		return
	}

	oldShape := a.shape
	oldStrides := oldShape.ComputeStrides()
	newData := make([]T, target.NumElements())
	curr := make([]int, len(target))

	for i := range newData {
		src, inside := 0, true
		for k, idx := range curr {
			if idx >= oldShape[k] {
				inside = false
				break
			}
			src += idx * oldStrides[k]
		}
		if inside {
			newData[i] = a.data[src]
		} else {
			newData[i] = fill
		}
		// Odometer increment over target.
		for k := len(curr) - 1; k >= 0; k-- {
			curr[k]++
			if curr[k] < target[k] {
				break
			}
			curr[k] = 0
		}
	}

	a.shape = target.Clone()
	a.data = newData
}
