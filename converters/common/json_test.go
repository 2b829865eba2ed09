package common

import (
	"testing"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNullJSON(t *testing.T) {
	got, err := ToNullJSON(map[string]any{"call": "M0CMC"})
	require.NoError(t, err)
	nj := got.(null.JSON)
	require.True(t, nj.Valid)
	assert.JSONEq(t, `{"call":"M0CMC"}`, string(nj.JSON))

	got, err = ToNullJSON(nil)
	require.NoError(t, err)
	assert.False(t, got.(null.JSON).Valid)

	_, err = ToNullJSON(make(chan int))
	assert.Error(t, err)
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(struct {
		Band string `json:"band"`
	}{Band: "20m"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"band":"20m"}`, string(got.(boilertypes.JSON)))

	got, err = ToJSON(nil)
	require.NoError(t, err)
	assert.Empty(t, got.(boilertypes.JSON))
}

func TestJSONToMap(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    map[string]any
		wantErr bool
	}{
		{name: "null.JSON", input: null.JSONFrom([]byte(`{"a":1}`)), want: map[string]any{"a": float64(1)}},
		{name: "invalid null.JSON", input: null.JSON{}},
		{name: "types.JSON", input: boilertypes.JSON(`{"b":"x"}`), want: map[string]any{"b": "x"}},
		{name: "bytes", input: []byte(`{"c":true}`), want: map[string]any{"c": true}},
		{name: "empty bytes", input: []byte{}},
		{name: "not an object", input: []byte(`[1,2]`), wantErr: true},
		{name: "string", input: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSONToMap(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
