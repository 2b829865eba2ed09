package common

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/mapper/converters"
	"github.com/aarondl/null/v8"
)

// StringToNullString converts a string to a null.String. The empty string becomes null.
func StringToNullString(src any) (any, error) {
	const op errors.Op = "converters.common.StringToNullString"
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return null.String{}, err
	}
	if srcVal == "" {
		return null.String{}, nil
	}
	return null.StringFrom(srcVal), nil
}

// NullStringToString converts a null.String (or plain string) to a string; null becomes "".
func NullStringToString(src any) (any, error) {
	const op errors.Op = "converters.common.NullStringToString"
	if ns, ok := src.(null.String); ok {
		if !ns.Valid {
			return "", nil
		}
		return ns.String, nil
	}
	srcVal, err := converters.CheckString(op, src)
	if err != nil {
		return "", err
	}
	return srcVal, nil
}

// BoolToNullBool converts a bool to a valid null.Bool.
func BoolToNullBool(src any) (any, error) {
	const op errors.Op = "converters.common.BoolToNullBool"
	srcVal, ok := src.(bool)
	if !ok {
		return null.Bool{}, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	return null.BoolFrom(srcVal), nil
}

// NullBoolToBool converts a null.Bool (or plain bool) to a bool; null becomes false.
func NullBoolToBool(src any) (any, error) {
	const op errors.Op = "converters.common.NullBoolToBool"
	if nb, ok := src.(null.Bool); ok {
		return nb.Valid && nb.Bool, nil
	}
	if b, ok := src.(bool); ok {
		return b, nil
	}
	return false, errors.New(op).Errorf("Given parameter not a bool or null.Bool, got %T", src)
}

// TimeToNullTime converts a time.Time to a null.Time. The zero time becomes null.
func TimeToNullTime(src any) (any, error) {
	const op errors.Op = "converters.common.TimeToNullTime"
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return null.Time{}, err
	}
	if srcVal.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(srcVal), nil
}

// NullTimeToTime converts a null.Time (or plain time.Time) to a time.Time; null becomes the zero time.
func NullTimeToTime(src any) (any, error) {
	const op errors.Op = "converters.common.NullTimeToTime"
	if nt, ok := src.(null.Time); ok {
		if !nt.Valid {
			return time.Time{}, nil
		}
		return nt.Time, nil
	}
	srcVal, err := converters.CheckTime(op, src)
	if err != nil {
		return time.Time{}, err
	}
	return srcVal, nil
}

// Int64ToNullInt64 converts any signed integer to a valid null.Int64.
func Int64ToNullInt64(src any) (any, error) {
	const op errors.Op = "converters.common.Int64ToNullInt64"
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return null.Int64{}, err
	}
	return null.Int64From(srcVal), nil
}

// NullInt64ToInt64 converts a null.Int64 (or a signed integer) to an int64; null becomes 0.
func NullInt64ToInt64(src any) (any, error) {
	const op errors.Op = "converters.common.NullInt64ToInt64"
	if ni, ok := src.(null.Int64); ok {
		if !ni.Valid {
			return int64(0), nil
		}
		return ni.Int64, nil
	}
	srcVal, err := converters.CheckInt64(op, src)
	if err != nil {
		return int64(0), err
	}
	return srcVal, nil
}
