package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	var payload struct {
		Start DateOnly  `json:"start"`
		End   *DateOnly `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-01-01","end":""}`), &payload))
	assert.Equal(t, "2024-01-01", payload.Start.String())
	require.NotNil(t, payload.End)
	assert.Equal(t, "", payload.End.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-01-01","end":""}`, string(out))

	var d DateOnly
	assert.Error(t, d.UnmarshalParam("2024/01/01"))
	assert.NoError(t, d.UnmarshalParam("2024-02-29"))
	assert.Equal(t, "2024-02-29", d.String())
}
