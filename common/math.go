package common

// MaxAmount is the upper bound of every token amount, score and price
// handled by the contract.
const MaxAmount = 9223372036854775807

// CheckAmount aborts execution if a is negative or exceeds MaxAmount.
func CheckAmount(a int) {
	if a < 0 {
		Abort(ErrInvalidArgument, "negative amount")
	}
	if a > MaxAmount {
		Abort(ErrOverflow, "amount exceeds limit")
	}
}

// SafeAdd returns a+b of two non-negative amounts. Execution is aborted
// with ErrOverflow if the sum exceeds MaxAmount.
func SafeAdd(a, b int) int {
	CheckAmount(a)
	CheckAmount(b)
	if a > MaxAmount-b {
		Abort(ErrOverflow, "addition exceeds limit")
	}

	return a + b
}

// SafeMul returns a*b of two non-negative amounts. Execution is aborted
// with ErrOverflow if the product exceeds MaxAmount.
func SafeMul(a, b int) int {
	CheckAmount(a)
	CheckAmount(b)
	if a != 0 && b > MaxAmount/a {
		Abort(ErrOverflow, "multiplication exceeds limit")
	}

	return a * b
}
