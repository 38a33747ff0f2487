package shift

import "errors"

var (
	ErrMissingWorkerID = errors.New("shift payload has no worker identifier")
	ErrMissingLocation = errors.New("shift payload has no location identifier")
	ErrInvalidDate     = errors.New("shift payload has no parsable date")
	ErrNegativeBreak   = errors.New("shift break minutes are negative")
	ErrNegativeHours   = errors.New("shift declared hours are negative")
)
