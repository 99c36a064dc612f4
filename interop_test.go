package numeric

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromShopspring(t *testing.T) {
	tests := []struct {
		s    string
		t    Type
		want string
	}{
		{"0", MustNewType(1, 0), "0"},
		{"-1.2345", MustNewType(5, 2), "-1.23"},
		{"1.235", MustNewType(5, 2), "1.24"},
		{"123456789012345678901234567890.1234", MustNewType(34, 4), "123456789012345678901234567890.1234"},
	}
	for _, tt := range tests {
		got, err := NewFromShopspring(decimal.RequireFromString(tt.s), tt.t)
		require.NoError(t, err, "NewFromShopspring(%v, %v)", tt.s, tt.t)
		assert.Equal(t, tt.want, got.String())
	}

	_, err := NewFromShopspring(decimal.RequireFromString("1000"), MustNewType(3, 0))
	assert.ErrorIs(t, err, Overflow)
}

func TestDecimal_Shopspring(t *testing.T) {
	d := MustParse("-1.23", MustNewType(5, 2))
	got, err := d.Shopspring()
	require.NoError(t, err)
	assert.Equal(t, "-1.23", got.String())
	assert.Equal(t, int32(-2), got.Exponent())

	back, err := NewFromShopspring(got, MustNewType(5, 2))
	require.NoError(t, err)
	assert.True(t, back.equalExact(d), "round trip of %v gave %v", d.RawString(), back.RawString())

	_, err = Inf(1).Shopspring()
	assert.ErrorIs(t, err, InfiniteResult)
}

func TestNewFromUint256(t *testing.T) {
	got, err := NewFromUint256(uint256.NewInt(42), MustNewType(5, 2))
	require.NoError(t, err)
	assert.Equal(t, "42.00", got.String())

	_, err = NewFromUint256(uint256.NewInt(1000), MustNewType(5, 2))
	assert.ErrorIs(t, err, Overflow)
}

func TestDecimal_Coef(t *testing.T) {
	got, err := MustParse("-123.45", MustNewType(5, 2)).Coef()
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), got.Uint64())

	got, err = MustParse(nines34, MustNewType(34, 0)).Coef()
	require.NoError(t, err)
	assert.Equal(t, nines34, got.ToBig().String())

	_, err = NaN().Coef()
	assert.ErrorIs(t, err, NaNResult)
}
