package expense

import "errors"

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrExpenseProcessed = errors.New("expense already processed")
	ErrCategoryNotFound = errors.New("expense category not found")
)
