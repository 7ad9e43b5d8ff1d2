package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("salary record not found")
	ErrNoWageBasis    = errors.New("employee has neither a daily wage nor a basic salary")
	ErrInvalidPeriod  = errors.New("invalid payroll month or year")
)
