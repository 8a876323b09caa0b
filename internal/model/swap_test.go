package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		current  SwapStatus
		expected SwapStatus
	}{
		{SwapStatusQueued, SwapStatusSent},
		{SwapStatusSent, SwapStatusConfirmed},
		{SwapStatusConfirmed, SwapStatusConfirmed},
		{SwapStatusFailed, SwapStatusFailed},
		{SwapStatus("bogus"), SwapStatusConfirmed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NextStatus(tt.current), "from %q", tt.current)
	}
}

func TestSwapStatus_Valid(t *testing.T) {
	for _, s := range []SwapStatus{SwapStatusQueued, SwapStatusSent, SwapStatusConfirmed, SwapStatusFailed} {
		assert.True(t, s.Valid(), "%q should be valid", s)
	}
	assert.False(t, SwapStatus("pending").Valid())
	assert.False(t, SwapStatus("").Valid())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var a Amount

	require.NoError(t, json.Unmarshal([]byte(`"10"`), &a))
	assert.Equal(t, Amount("10"), a)

	require.NoError(t, json.Unmarshal([]byte(`10`), &a))
	assert.Equal(t, Amount("10"), a)

	require.NoError(t, json.Unmarshal([]byte(`10.5`), &a))
	assert.Equal(t, Amount("10.5"), a)

	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
	assert.Error(t, json.Unmarshal([]byte(`null`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &a))
}

func TestSwapBody_ValueScanRoundTrip(t *testing.T) {
	refund := "refund-address-1"
	body := SwapBody{
		FromChain: "ethereum",
		FromToken: "USDC",
		ToChain:   "polygon",
		ToToken:   "USDT",
		Amount:    "25",
		Receiver:  "receiver-address-1",
		Refund:    &refund,
	}

	raw, err := body.Value()
	require.NoError(t, err)

	var decoded SwapBody
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, body, decoded)

	var fromString SwapBody
	require.NoError(t, fromString.Scan(string(raw.([]byte))))
	assert.Equal(t, body, fromString)

	assert.Error(t, decoded.Scan(42))
}
