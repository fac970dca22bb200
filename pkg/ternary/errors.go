package ternary

import "errors"

// ErrInvalidDigit is returned when an integer has no balanced-ternary digit.
var ErrInvalidDigit = errors.New("invalid ternary digit")
