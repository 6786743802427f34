package gm

// Snapped rounds value to the nearest multiple of step. A step of zero
// returns value unchanged.
func Snapped[S Float](value, step S) S {
	if step != 0 {
		value = S(Floor(value/step+0.5) * step)
	}

	return value
}

// SnapScalar snaps target to a grid with the given step that is shifted by offset.
func SnapScalar[S Float](offset, step, target S) S {
	if step == 0 {
		return target
	}

	return Snapped(target-offset, step) + offset
}

// SnapScalarSeparation snaps target to a grid of cells of size step that are
// separated by a gap of the given size. Values in a gap snap to the nearer
// edge of a cell.
func SnapScalarSeparation[S Float](offset, step, target, separation S) S {
	if step == 0 {
		return target
	}

	a := Snapped(target-offset, step+separation) + offset
	b := a
	if target >= 0 {
		b -= separation
	} else {
		b += step
	}

	if Abs(target-a) < Abs(target-b) {
		return a
	}

	return b
}
