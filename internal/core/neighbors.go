package core

// CountMoore counts cells equal to value in the square of the given range
// around (x, y), excluding the centre. Missing samples never match.
func CountMoore(g *Grid, x, y, rng int, b Boundary, value uint8) int {
	sum := 0
	for ky := -rng; ky <= rng; ky++ {
		for kx := -rng; kx <= rng; kx++ {
			if kx == 0 && ky == 0 {
				continue
			}
			if s, ok := g.Sample(x+kx, y+ky, b); ok && s == value {
				sum++
			}
		}
	}
	return sum
}

// CountVonNeumann counts cells equal to value in the diamond of Manhattan
// radius rng around (x, y), excluding the centre. Rows are walked from the top
// vertex down; each row is 2*(rng-|ky|)+1 cells wide.
func CountVonNeumann(g *Grid, x, y, rng int, b Boundary, value uint8) int {
	sum := 0
	for ky := -rng; ky <= rng; ky++ {
		half := rng - abs(ky)
		for kx := -half; kx <= half; kx++ {
			if kx == 0 && ky == 0 {
				continue
			}
			if s, ok := g.Sample(x+kx, y+ky, b); ok && s == value {
				sum++
			}
		}
	}
	return sum
}

// CountAlive counts the 8 Moore neighbours holding state 1.
func CountAlive(g *Grid, x, y int, b Boundary) int {
	return CountMoore(g, x, y, 1, b, 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
