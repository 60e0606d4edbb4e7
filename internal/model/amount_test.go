package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		set     bool
		wantErr bool
	}{
		{in: "", set: false},
		{in: "   ", set: false},
		{in: "100", want: "100", set: true},
		{in: "0", want: "0", set: true},
		{in: "12.", want: "12", set: true},
		{in: "12.50", want: "12.5", set: true},
		{in: " 7 ", want: "7", set: true},
		{in: "abc", wantErr: true},
		{in: "1.2.", wantErr: true},
		{in: "-", wantErr: true},
		{in: ".", wantErr: true},
		{in: ".5", want: "0.5", set: true},
		{in: "1e5", wantErr: true},
		{in: "1E3", wantErr: true},
		{in: "1e999999995", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "1 000", wantErr: true},
		{in: "123456789012345", want: "123456789012345", set: true},
		{in: "1234567890123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.Set)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.set, got.Set)
			if tt.set {
				assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.want)), "got %s", got.Value)
			}
		})
	}
}

func TestParseBalance(t *testing.T) {
	d, err := ParseBalance("-7.25")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("-7.25")))

	d, err = ParseBalance(" 20 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(20)))

	for _, in := range []string{"", "-", "1e9", "-1e999999995", "--5", "+3"} {
		_, err := ParseBalance(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestAmountIsZero(t *testing.T) {
	assert.True(t, Unset.IsZero())
	assert.True(t, AmountOf(decimal.Zero).IsZero())
	assert.False(t, AmountOf(decimal.NewFromInt(3)).IsZero())
	assert.True(t, Unset.OrZero().IsZero())
	assert.Equal(t, "", Unset.String())
}

func TestFriendStanding(t *testing.T) {
	assert.Equal(t, Owed, Friend{Balance: decimal.NewFromInt(7)}.Standing())
	assert.Equal(t, Owing, Friend{Balance: decimal.NewFromInt(-7)}.Standing())
	assert.Equal(t, Settled, Friend{}.Standing())
}
