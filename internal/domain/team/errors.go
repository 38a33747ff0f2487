package team

import "errors"

var (
	ErrInvalidSplitRatio = errors.New("split ratio parts must sum to 1.0")
	ErrUnknownCategory   = errors.New("mapping category is not kitchen, service, management or other")
)
