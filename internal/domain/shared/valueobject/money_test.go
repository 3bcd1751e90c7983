package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(8.99), USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(8.99)))

	_, err = NewMoney(decimal.Zero, "")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyUSDFromFloat(10.50)
	b := NewMoneyUSDFromFloat(4.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewMoneyUSDFromFloat(14.75)))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(NewMoneyUSDFromFloat(6.25)))

	doubled := a.MultiplyByInt(2)
	assert.True(t, doubled.Equals(NewMoneyUSDFromFloat(21.00)))

	half, err := a.Divide(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, half.Equals(NewMoneyUSDFromFloat(5.25)))

	_, err = a.Divide(decimal.Zero)
	assert.Error(t, err)
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := NewMoneyUSDFromFloat(1)
	eur, err := NewMoney(decimal.NewFromInt(1), Currency("EUR"))
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.Error(t, err)

	_, err = usd.Subtract(eur)
	assert.Error(t, err)
}

func TestMoney_Equals(t *testing.T) {
	small := NewMoneyUSDFromFloat(3.49)
	big := NewMoneyUSDFromFloat(24.99)

	assert.False(t, small.Equals(big))
	assert.True(t, small.Equals(NewMoneyUSDFromFloat(3.49)))
}

func TestMoney_Round(t *testing.T) {
	m := NewMoneyUSDFromFloat(19.4184)
	assert.Equal(t, "19.42 USD", m.Round(2).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyUSDFromFloat(12.34)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}
