package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNegative(t *testing.T) {
	_, err := New(-1)
	require.ErrorIs(t, err, ErrNegative)

	m, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, Money(0), m)
}

func TestSub_SaturatesAtZero(t *testing.T) {
	assert.Equal(t, Money(0), Money(100).Sub(250))
	assert.Equal(t, Money(0), Money(100).Sub(100))
	assert.Equal(t, Money(40), Money(100).Sub(60))
}

func TestMul(t *testing.T) {
	assert.Equal(t, Money(10000), Money(5000).Mul(2))
	assert.Equal(t, Money(0), Money(5000).Mul(0))
	assert.Equal(t, Money(0), Money(5000).Mul(-3))
}

func TestDiff_IsSigned(t *testing.T) {
	assert.Equal(t, int64(-500), Money(19500).Diff(20000))
	assert.Equal(t, int64(500), Money(20500).Diff(20000))
}

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Money
		err  bool
	}{
		{"10000", 10000, false},
		{"1999.5", 2000, false},
		{"0", 0, false},
		{"-1", 0, true},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.in)
		got, err := FromDecimal(d)
		if c.err {
			assert.Error(t, err, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, Money(35), Sum(10, 20, 5))
	assert.Equal(t, Money(0), Sum())
}
