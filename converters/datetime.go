package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// DateStringToTime parses a YYYYMMDD or YYYY-MM-DD date into a UTC time.Time.
func DateStringToTime(src any) (any, error) {
	const op errors.Op = "converters.DateStringToTime"
	srcVal, err := CheckNonEmptyString(op, src)
	if err != nil {
		return nil, err
	}

	var retVal time.Time
	switch {
	case len(srcVal) == 8:
		retVal, err = time.Parse("20060102", srcVal)
	case len(srcVal) == 10 && srcVal[4] == '-' && srcVal[7] == '-':
		retVal, err = time.Parse("2006-01-02", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadDateFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return retVal, nil
}

// TimeToDateString formats a time.Time as YYYYMMDD.
func TimeToDateString(src any) (any, error) {
	const op errors.Op = "converters.TimeToDateString"
	srcVal, err := CheckTime(op, src)
	if err != nil {
		return "", err
	}
	if srcVal.IsZero() {
		return "", nil
	}
	return srcVal.Format("20060102"), nil
}

// TimeStringToTime parses an HHMM or HH:MM time of day. The date part is the zero date.
func TimeStringToTime(src any) (any, error) {
	const op errors.Op = "converters.TimeStringToTime"
	srcVal, err := CheckNonEmptyString(op, src)
	if err != nil {
		return nil, err
	}

	var retVal time.Time
	switch {
	case len(srcVal) == 5 && srcVal[2] == ':':
		retVal, err = time.Parse("15:04", srcVal)
	case len(srcVal) == 4:
		retVal, err = time.Parse("1504", srcVal)
	default:
		return nil, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return retVal, nil
}

// TimeToTimeString formats the time of day of a time.Time as HHMM.
func TimeToTimeString(src any) (any, error) {
	const op errors.Op = "converters.TimeToTimeString"
	srcVal, err := CheckTime(op, src)
	if err != nil {
		return "", err
	}
	return srcVal.Format("1504"), nil
}
