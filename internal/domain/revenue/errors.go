package revenue

import "errors"

var (
	ErrMissingLocation = errors.New("revenue row has no location identifier")
	ErrInvalidDate     = errors.New("revenue row has no parsable date")
	ErrInvalidHour     = errors.New("revenue row hour is outside 0-23")
	ErrUnknownDivision = errors.New("revenue row division is not food, beverage or all")
	ErrNegativeAmount  = errors.New("revenue row amount is negative")
)
