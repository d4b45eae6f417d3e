package report

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid report period")
	ErrInvalidDate   = errors.New("invalid report date")
)
