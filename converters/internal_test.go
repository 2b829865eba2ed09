package converters

import (
	"testing"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckString(t *testing.T) {
	op := errors.Op("test.CheckString")

	tests := []struct {
		name    string
		input   interface{}
		want    string
		wantErr bool
	}{
		{name: "valid string", input: "test string", want: "test string"},
		{name: "empty string", input: "", want: ""},
		{name: "non-string (int)", input: 123, wantErr: true},
		{name: "non-string (nil)", input: nil, wantErr: true},
		{name: "non-string (bool)", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckString(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckNonEmptyString(t *testing.T) {
	op := errors.Op("test.CheckNonEmptyString")

	got, err := CheckNonEmptyString(op, "20m")
	require.NoError(t, err)
	assert.Equal(t, "20m", got)

	_, err = CheckNonEmptyString(op, "")
	assert.Error(t, err)

	_, err = CheckNonEmptyString(op, 20)
	assert.Error(t, err)
}

func TestCheckFloat64(t *testing.T) {
	op := errors.Op("test.CheckFloat64")

	tests := []struct {
		name    string
		input   interface{}
		want    float64
		wantErr bool
	}{
		{name: "valid float64", input: 123.45, want: 123.45},
		{name: "zero float64", input: 0.0, want: 0},
		{name: "float32", input: float32(0.5), want: 0.5},
		{name: "non-float64 (int)", input: 123, wantErr: true},
		{name: "non-float64 (string)", input: "123.45", wantErr: true},
		{name: "non-float64 (nil)", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckFloat64(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckInt64(t *testing.T) {
	op := errors.Op("test.CheckInt64")

	tests := []struct {
		name    string
		input   interface{}
		want    int64
		wantErr bool
	}{
		{name: "valid int64", input: int64(123), want: 123},
		{name: "int", input: 123, want: 123},
		{name: "int32", input: int32(123), want: 123},
		{name: "int16", input: int16(123), want: 123},
		{name: "int8", input: int8(123), want: 123},
		{name: "uint", input: uint(123), want: 123},
		{name: "uint64", input: uint64(123), want: 123},
		{name: "uint64 overflow", input: uint64(1 << 63), want: -1, wantErr: true},
		{name: "uint32", input: uint32(123), want: 123},
		{name: "uint16", input: uint16(123), want: 123},
		{name: "uint8", input: uint8(123), want: 123},
		{name: "float64 with integer value", input: float64(123), want: 123},
		{name: "float64 with decimal (invalid)", input: 123.45, want: -1, wantErr: true},
		{name: "non-integer (string)", input: "123", want: -1, wantErr: true},
		{name: "non-integer (nil)", input: nil, want: -1, wantErr: true},
		{name: "non-integer (bool)", input: true, want: -1, wantErr: true},
		{name: "negative int64", input: int64(-123), want: -123},
		{name: "large int64", input: int64(9223372036854775807), want: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckInt64(op, tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckTime(t *testing.T) {
	op := errors.Op("test.CheckTime")
	now := time.Date(2025, 11, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   interface{}
		want    time.Time
		wantErr bool
	}{
		{name: "valid time.Time", input: now, want: now},
		{name: "pointer to time.Time", input: &now, want: now},
		{name: "zero time.Time", input: time.Time{}, want: time.Time{}},
		{name: "nil *time.Time", input: (*time.Time)(nil), wantErr: true},
		{name: "non-time.Time (string)", input: "2025-11-07", wantErr: true},
		{name: "non-time.Time (nil)", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckTime(op, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// JSON decoding into interface{} turns every number into a float64
func TestCheckInt64_JSONUnmarshalling(t *testing.T) {
	op := errors.Op("test.CheckInt64_JSONUnmarshalling")

	result, err := CheckInt64(op, float64(14320000))
	require.NoError(t, err)
	assert.Equal(t, int64(14320000), result)
}
