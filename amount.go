package sapling

import (
	"github.com/shieldpool/sapling/errors"
	"github.com/shieldpool/sapling/math/checked"
)

// MaxMoney is the monetary supply ceiling in zatoshis.
// Every valid Amount, including a bundle's value balance,
// lies in [-MaxMoney, MaxMoney].
const MaxMoney Amount = 21000000 * 100000000

// ErrRange indicates a value outside the interval its field permits.
var ErrRange = errors.New("value out of range")

// Amount is a quantity of zatoshis. Negative amounts appear as value
// balances when value enters the shielded pool.
//
// Arithmetic on Amount reports ErrRange instead of wrapping or
// leaving [-MaxMoney, MaxMoney].
type Amount int64

// NewAmount converts n to an Amount,
// rejecting values outside [-MaxMoney, MaxMoney].
func NewAmount(n int64) (Amount, error) {
	a := Amount(n)
	if !a.valid() {
		return 0, errors.WithDetailf(ErrRange, "amount %d", n)
	}
	return a, nil
}

func (a Amount) valid() bool {
	return a >= -MaxMoney && a <= MaxMoney
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	sum, ok := checked.AddInt64(int64(a), int64(b))
	if !ok || !Amount(sum).valid() {
		return 0, errors.WithDetailf(ErrRange, "%d + %d", int64(a), int64(b))
	}
	return Amount(sum), nil
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff, ok := checked.SubInt64(int64(a), int64(b))
	if !ok || !Amount(diff).valid() {
		return 0, errors.WithDetailf(ErrRange, "%d - %d", int64(a), int64(b))
	}
	return Amount(diff), nil
}

// Mul returns a * n.
func (a Amount) Mul(n int64) (Amount, error) {
	product, ok := checked.MulInt64(int64(a), n)
	if !ok || !Amount(product).valid() {
		return 0, errors.WithDetailf(ErrRange, "%d * %d", int64(a), n)
	}
	return Amount(product), nil
}

// Neg returns -a.
func (a Amount) Neg() (Amount, error) {
	negated, ok := checked.NegateInt64(int64(a))
	if !ok || !Amount(negated).valid() {
		return 0, errors.WithDetailf(ErrRange, "-(%d)", int64(a))
	}
	return Amount(negated), nil
}
