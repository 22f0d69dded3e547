package boundable

// Error is a constant error, allowing sentinels to be declared with const.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

const (
	// ErrDivisorMayBeZero indicates a divisor interval that contains zero.
	ErrDivisorMayBeZero Error = "divisor interval contains zero"

	// ErrNotRepresentable indicates a result interval with values outside
	// the magnitude domain, such as a negative unsigned difference.
	ErrNotRepresentable Error = "result is not representable in the magnitude domain"

	// ErrOverflow indicates an arithmetic result outside the operand type.
	ErrOverflow Error = "arithmetic overflow"
)
