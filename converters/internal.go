package converters

import (
	"math"
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString asserts src is a string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	return srcVal, nil
}

// CheckNonEmptyString asserts src is a non-empty string.
func CheckNonEmptyString(op errors.Op, src any) (string, error) {
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", err
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgParamEmpty)
	}
	return srcVal, nil
}

// CheckFloat64 asserts src is a float64 (or float32) and widens it.
func CheckFloat64(op errors.Op, src any) (float64, error) {
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	return 0, errors.New(op).Errorf("Given parameter not a float64, got %T", src)
}

// CheckInt64 asserts src is an integer, or a float64 holding a whole number as produced by JSON
// decoding, and widens it to int64.
func CheckInt64(op errors.Op, src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), nil
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), nil
		}
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), nil
		}
		return -1, errors.New(op).Errorf("Given float64 is not a whole number: %v", v)
	}
	return -1, errors.New(op).Errorf("Given parameter not a int64, got %T", src)
}

// CheckTime asserts src is a time.Time or a non-nil *time.Time.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	}
	return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
}
