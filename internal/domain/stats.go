package domain

// Extreme is the minimum or maximum of a sequence and where it occurs.
type Extreme struct {
	Value float64 `json:"value"`
	Index int     `json:"index"` // last index holding Value
}

// Mean returns the arithmetic mean of values, summed left to right.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// FindMin returns the smallest value and the last index at which it occurs.
// ok is false for an empty sequence.
func FindMin(values []float64) (ext Extreme, ok bool) {
	return findExtreme(values, func(candidate, best float64) bool { return candidate <= best })
}

// FindMax returns the largest value and the last index at which it occurs.
// ok is false for an empty sequence.
func FindMax(values []float64) (ext Extreme, ok bool) {
	return findExtreme(values, func(candidate, best float64) bool { return candidate >= best })
}

// findExtreme scans once; replacing on equality makes the last occurrence win.
func findExtreme(values []float64, better func(candidate, best float64) bool) (Extreme, bool) {
	if len(values) == 0 {
		return Extreme{}, false
	}
	ext := Extreme{Value: values[0], Index: 0}
	for i := 1; i < len(values); i++ {
		if better(values[i], ext.Value) {
			ext = Extreme{Value: values[i], Index: i}
		}
	}
	return ext, true
}

// indexOf returns the first index of v in values, or -1.
func indexOf(values []float64, v float64) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
