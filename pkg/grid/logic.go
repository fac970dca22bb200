package grid

import "github.com/aretw0/balance/pkg/ternary"

var (
	ternaryAnd = ternary.Digit.And
	ternaryOr  = ternary.Digit.Or
	ternaryXor = ternary.Digit.Xor
)

// Apply maps each axis through its own digit function. It panics if a
// function returns a digit outside {Neg, Zero, Pos}.
func (p Position) Apply(fx, fy func(ternary.Digit) ternary.Digit) Position {
	x, y := p.ToTernaryPair()
	return MustFromTernaryPair(fx(x), fy(y))
}

// ApplyBoth maps both axes through f.
func (p Position) ApplyBoth(f func(ternary.Digit) ternary.Digit) Position {
	return p.Apply(f, f)
}

// ApplyWith combines p and o axis by axis. Like Apply, it panics on
// invalid digits.
func (p Position) ApplyWith(o Position, fx, fy func(a, b ternary.Digit) ternary.Digit) Position {
	x1, y1 := p.ToTernaryPair()
	x2, y2 := o.ToTernaryPair()
	return MustFromTernaryPair(fx(x1, x2), fy(y1, y2))
}

func (p Position) combine(o Position, f func(a, b ternary.Digit) ternary.Digit) Position {
	return p.ApplyWith(o, f, f)
}

// Possibly maps each axis through ternary.Digit.Possibly.
func (p Position) Possibly() Position { return p.ApplyBoth(ternary.Digit.Possibly) }

// Necessary maps each axis through ternary.Digit.Necessary.
func (p Position) Necessary() Position { return p.ApplyBoth(ternary.Digit.Necessary) }

// Contingently maps each axis through ternary.Digit.Contingently.
func (p Position) Contingently() Position { return p.ApplyBoth(ternary.Digit.Contingently) }

// AbsPositive replaces each axis by its absolute value.
func (p Position) AbsPositive() Position { return p.ApplyBoth(ternary.Digit.AbsPositive) }

// Positive keeps the positive axes and zeroes the rest.
func (p Position) Positive() Position { return p.ApplyBoth(ternary.Digit.Positive) }

// NotNegative maps each axis through ternary.Digit.NotNegative.
func (p Position) NotNegative() Position { return p.ApplyBoth(ternary.Digit.NotNegative) }

// NotPositive maps each axis through ternary.Digit.NotPositive.
func (p Position) NotPositive() Position { return p.ApplyBoth(ternary.Digit.NotPositive) }

// Negative keeps the negative axes and zeroes the rest.
func (p Position) Negative() Position { return p.ApplyBoth(ternary.Digit.Negative) }

// AbsNegative replaces each axis by minus its absolute value.
func (p Position) AbsNegative() Position { return p.ApplyBoth(ternary.Digit.AbsNegative) }

// HTNot applies the Heyting negation to each axis.
func (p Position) HTNot() Position { return p.ApplyBoth(ternary.Digit.HTNot) }

// Post advances each axis cyclically (-1 -> 0 -> 1 -> -1).
func (p Position) Post() Position { return p.ApplyBoth(ternary.Digit.Post) }

// Pre steps each axis back cyclically (1 -> 0 -> -1 -> 1).
func (p Position) Pre() Position { return p.ApplyBoth(ternary.Digit.Pre) }

// K3Imply applies the Kleene implication axis by axis.
func (p Position) K3Imply(o Position) Position { return p.combine(o, ternary.Digit.K3Imply) }

// K3Equiv applies the Kleene equivalence axis by axis.
func (p Position) K3Equiv(o Position) Position { return p.combine(o, ternary.Digit.K3Equiv) }

// HTImply applies the Heyting implication axis by axis.
func (p Position) HTImply(o Position) Position { return p.combine(o, ternary.Digit.HTImply) }

// Truth predicates read the x axis and the y axis as two ternary truth values.

// IsTrue reports whether both axes are true (x = y = 1).
func (p Position) IsTrue() bool { return p == TopRight }

// HasTrue reports whether at least one axis is true.
func (p Position) HasTrue() bool { return p.X() == 1 || p.Y() == 1 }

// IsFalse reports whether both axes are false (x = y = -1).
func (p Position) IsFalse() bool { return p == BottomLeft }

// HasFalse reports whether at least one axis is false.
func (p Position) HasFalse() bool { return p.X() == -1 || p.Y() == -1 }

// IsContradictory reports whether the axes hold opposite truth values.
func (p Position) IsContradictory() bool { return p == TopLeft || p == BottomRight }

// HasUnknown reports whether at least one axis is unknown.
func (p Position) HasUnknown() bool { return p.X() == 0 || p.Y() == 0 }

// IsCertain reports whether both axes agree on a definite value.
func (p Position) IsCertain() bool { return p.IsTrue() || p.IsFalse() }

// IsUncertain is the negation of IsCertain.
func (p Position) IsUncertain() bool { return !p.IsCertain() }

// Bool reads a certain Position as a boolean.
func (p Position) Bool() (bool, error) {
	switch {
	case p.IsTrue():
		return true, nil
	case p.IsFalse():
		return false, nil
	default:
		return false, ErrUncertain
	}
}

// XBool reads the x axis as a boolean.
func (p Position) XBool() (bool, error) { return trit(p.X()) }

// YBool reads the y axis as a boolean.
func (p Position) YBool() (bool, error) { return trit(p.Y()) }

func trit(v int) (bool, error) {
	if v == 0 {
		return false, ErrUncertain
	}
	return v == 1, nil
}
