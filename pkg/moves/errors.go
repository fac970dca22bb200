package moves

import "errors"

// ErrVectorTooLarge is the panic value's cause when a displacement has an
// ordinate equal to math.MinInt.
var ErrVectorTooLarge = errors.New("vector magnitude overflows int")
