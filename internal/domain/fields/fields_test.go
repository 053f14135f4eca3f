package fields

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceString(t *testing.T) {
	cases := []struct {
		name  string
		price Price
		want  string
	}{
		{"two decimals", Price{Int: big.NewInt(1250), Exp: -2, Valid: true}, "12.50"},
		{"leading zero", Price{Int: big.NewInt(5), Exp: -2, Valid: true}, "0.05"},
		{"positive exponent", Price{Int: big.NewInt(3), Exp: 2, Valid: true}, "300"},
		{"negative", Price{Int: big.NewInt(-1999), Exp: -2, Valid: true}, "-19.99"},
		{"null", Price{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.price.String())
		})
	}
}

func TestPriceJSON(t *testing.T) {
	var payload struct {
		Price Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 25.00}`), &payload))
	assert.True(t, payload.Price.IsSet())
	assert.Equal(t, "25.00", payload.Price.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 25.00}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"price": "7.5"}`), &payload))
	assert.Equal(t, "7.5", payload.Price.String())

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &payload))
	assert.False(t, payload.Price.IsSet())
	out, err = json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"price": "cheap"}`), &payload))
}

func TestPriceIsNegative(t *testing.T) {
	p, err := NewPrice("-1.00")
	require.NoError(t, err)
	assert.True(t, p.IsNegative())
	p, err = NewPrice("0")
	require.NoError(t, err)
	assert.False(t, p.IsNegative())
}

func TestPriceNumericRoundTrip(t *testing.T) {
	var p Price
	require.NoError(t, p.ScanNumeric(pgtype.Numeric{Int: big.NewInt(1000), Exp: -2, Valid: true}))
	n, err := p.NumericValue()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n.Int.Int64())
	assert.Equal(t, int32(-2), n.Exp)
}

func TestPriceInRange(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"0", true},
		{"25.50", true},
		{"99999999.99", true},
		{"-99999999.99", true},
		{"99999999.994", true},
		{"99999999.995", false},
		{"100000000", false},
		{"1000000000", false},
		{"1e9", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			p, err := NewPrice(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.InRange())
		})
	}
	assert.True(t, Price{}.InRange())
}
