package core

// Mod returns n modulo m with the sign of m, so Mod(-1, w) == w-1.
func Mod(n, m int) int {
	return (n%m + m) % m
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(n, m int) int {
	q := n / m
	if n%m != 0 && (n < 0) != (m < 0) {
		q--
	}
	return q
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsASCII reports whether every byte of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
