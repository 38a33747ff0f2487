package productivity

import "errors"

var (
	ErrRunNotFound = errors.New("no productivity run exists for this location and date")
	ErrFutureDate  = errors.New("productivity cannot be computed for future dates")
)
