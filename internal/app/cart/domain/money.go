package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary value with exact rational arithmetic. Cart totals
// are derived by summation and must never accumulate float error, so
// the value is held as a big.Rat rather than a float.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MoneyFromInt creates a Money with a whole-unit value.
func MoneyFromInt(v int64) *Money {
	return &Money{rat: big.NewRat(v, 1)}
}

// MoneyFromFloat creates a Money from a float64, typically a price
// decoded from the remote API's JSON. The exact value of the float is
// preserved.
func MoneyFromFloat(v float64) *Money {
	rat := new(big.Rat).SetFloat64(v)
	if rat == nil {
		return ZeroMoney()
	}
	return &Money{rat: rat}
}

// ZeroMoney creates a zero-valued Money.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add returns the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyInt returns m scaled by a whole number, e.g. a line quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// IsZero returns true if the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// GreaterThan returns true if m is strictly greater than other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if m and other have the same value.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates an independent copy of m.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
