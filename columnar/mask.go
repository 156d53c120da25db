package columnar

// Mask selects positions of a column. It is aligned positionally with the column it was built from.
type Mask []bool

func maskBuffer(dst Mask, n int) Mask {
	if dst == nil {
		return make(Mask, n)
	}
	if len(dst) != n {
		panic(badLength)
	}
	return dst
}

// Count returns the number of selected positions.
func (m Mask) Count() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// Less computes dst = s < c
func Less(dst Mask, s []float64, c float64) Mask {
	dst = maskBuffer(dst, len(s))
	for i, v := range s {
		dst[i] = v < c
	}
	return dst
}

// Greater computes dst = s > c
func Greater(dst Mask, s []float64, c float64) Mask {
	dst = maskBuffer(dst, len(s))
	for i, v := range s {
		dst[i] = v > c
	}
	return dst
}

// Not computes dst = !m
func Not(dst, m Mask) Mask {
	dst = maskBuffer(dst, len(m))
	for i, b := range m {
		dst[i] = !b
	}
	return dst
}

// And computes dst = a && b
func And(dst, a, b Mask) Mask {
	if len(a) != len(b) {
		panic(badLength)
	}
	dst = maskBuffer(dst, len(a))
	for i := range a {
		dst[i] = a[i] && b[i]
	}
	return dst
}

// Compress returns the elements of s selected by m, in order (s[m]).
// A non-nil dst must have length m.Count().
func Compress(dst, s []float64, m Mask) []float64 {
	checkMask(s, m)
	dst = buffer(dst, m.Count())
	j := 0
	for i, b := range m {
		if b {
			dst[j] = s[i]
			j++
		}
	}
	return dst
}

// DivWhere divides the selected elements of s in place by the compressed column d (s[m] /= d).
func DivWhere(s []float64, m Mask, d []float64) {
	checkMask(s, m)
	if m.Count() != len(d) {
		panic(badLength)
	}
	j := 0
	for i, b := range m {
		if b {
			s[i] /= d[j]
			j++
		}
	}
}

// SetWhere assigns v to the selected elements of s (s[m] = v).
func SetWhere(s []float64, m Mask, v float64) {
	checkMask(s, m)
	for i, b := range m {
		if b {
			s[i] = v
		}
	}
}

func checkMask(s []float64, m Mask) {
	if len(s) != len(m) {
		panic(badLength)
	}
}
