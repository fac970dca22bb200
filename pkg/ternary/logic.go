package ternary

// Not negates the digit.
func (d Digit) Not() Digit { return -d }

// And is the Kleene conjunction (minimum).
func (d Digit) And(o Digit) Digit {
	if o < d {
		return o
	}
	return d
}

// Or is the Kleene disjunction (maximum).
func (d Digit) Or(o Digit) Digit {
	if o > d {
		return o
	}
	return d
}

// Xor is non-zero only when exactly one operand is non-zero, and then it
// takes that operand's sign.
func (d Digit) Xor(o Digit) Digit {
	switch {
	case d == Zero:
		return o
	case o == Zero:
		return d
	default:
		return Zero
	}
}

// Mul is the digit product. It is closed over {-1, 0, 1}.
func (d Digit) Mul(o Digit) Digit { return d * o }

// Possibly maps everything but Neg to Pos.
func (d Digit) Possibly() Digit {
	if d == Neg {
		return Neg
	}
	return Pos
}

// Necessary maps everything but Pos to Neg.
func (d Digit) Necessary() Digit {
	if d == Pos {
		return Pos
	}
	return Neg
}

// Contingently is Pos for Zero and Neg otherwise.
func (d Digit) Contingently() Digit {
	if d == Zero {
		return Pos
	}
	return Neg
}

// AbsPositive returns |d|.
func (d Digit) AbsPositive() Digit {
	if d == Neg {
		return Pos
	}
	return d
}

// Positive keeps Pos and maps the rest to Zero.
func (d Digit) Positive() Digit {
	if d == Pos {
		return Pos
	}
	return Zero
}

// NotNegative maps Neg to Zero and the rest to Pos.
func (d Digit) NotNegative() Digit {
	if d == Neg {
		return Zero
	}
	return Pos
}

// NotPositive maps Pos to Zero and the rest to Neg.
func (d Digit) NotPositive() Digit {
	if d == Pos {
		return Zero
	}
	return Neg
}

// Negative keeps Neg and maps the rest to Zero.
func (d Digit) Negative() Digit {
	if d == Neg {
		return Neg
	}
	return Zero
}

// AbsNegative returns -|d|.
func (d Digit) AbsNegative() Digit {
	if d == Pos {
		return Neg
	}
	return d
}

// HTNot is the Heyting negation: Pos only for Neg.
func (d Digit) HTNot() Digit {
	if d == Neg {
		return Pos
	}
	return Neg
}

// Post is the cyclic successor (Neg -> Zero -> Pos -> Neg).
func (d Digit) Post() Digit {
	if d == Pos {
		return Neg
	}
	return d + 1
}

// Pre is the cyclic predecessor (Pos -> Zero -> Neg -> Pos).
func (d Digit) Pre() Digit {
	if d == Neg {
		return Pos
	}
	return d - 1
}

// K3Imply is the Kleene implication, max(-d, o).
func (d Digit) K3Imply(o Digit) Digit { return d.Not().Or(o) }

// K3Equiv is the Kleene equivalence, d*o.
func (d Digit) K3Equiv(o Digit) Digit { return d * o }

// HTImply is the Heyting implication: Pos when d <= o, o otherwise.
func (d Digit) HTImply(o Digit) Digit {
	if d <= o {
		return Pos
	}
	return o
}
