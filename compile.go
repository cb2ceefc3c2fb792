package cubeless

// macro returns the fixed primitive sequence a derived move expands to.
// The order matters: the primitives do not commute.
func macro(k Kind) []Move {
	switch k {
	// Whole-cube rotations: the face, the slice and the opposite face together.
	case KindX:
		return []Move{{KindR, 1}, {KindM, 3}, {KindL, 3}}
	case KindY:
		return []Move{{KindU, 1}, {KindE, 3}, {KindD, 3}}
	case KindZ:
		return []Move{{KindF, 1}, {KindS, 1}, {KindB, 3}}

	// Wide turns: the slice first, then the face.
	case KindUw:
		return []Move{{KindE, 3}, {KindU, 1}}
	case KindRw:
		return []Move{{KindM, 3}, {KindR, 1}}
	case KindFw:
		return []Move{{KindS, 1}, {KindF, 1}}
	case KindDw:
		return []Move{{KindE, 1}, {KindD, 1}}
	case KindLw:
		return []Move{{KindM, 1}, {KindL, 1}}
	case KindBw:
		return []Move{{KindS, 3}, {KindB, 1}}
	default:
		return nil
	}
}

// Expand returns the primitive quarter turns that m performs, in order.
// A derived move of amount n repeats its whole macro n times.
func Expand(m Move) []Move {
	amount := normalizeAmount(m.Amount)
	if m.Kind.IsPrimitive() {
		out := make([]Move, amount)
		for i := range out {
			out[i] = Move{Kind: m.Kind, Amount: 1}
		}
		return out
	}

	steps := macro(m.Kind)
	var out []Move
	for i := 0; i < amount; i++ {
		for _, step := range steps {
			out = append(out, Expand(step)...)
		}
	}
	return out
}

// turn applies amount quarter turns of kind k.
func (c *Cube) turn(k Kind, amount int) {
	amount = normalizeAmount(amount)

	if p := permutation(k); p != nil {
		for i := 0; i < amount; i++ {
			c.quarter(p)
		}
		return
	}

	steps := macro(k)
	for i := 0; i < amount; i++ {
		for _, step := range steps {
			c.turn(step.Kind, step.Amount)
		}
	}
}
