package models

import (
	"errors"
)

var (
	ErrCategoryNotFound   = errors.New("there is no category with this ID")
	ErrUnknownCategory    = errors.New("the transaction references a category that does not exist")
	ErrCategoryNesting    = errors.New("categories can only be nested one level deep")
	ErrDuplicateCategory  = errors.New("the category ID is used more than once")
	ErrInvalidAmount      = errors.New("the amount must be a number larger than zero")
	ErrInvalidDateRange   = errors.New("the start date must be set and must not be after the end date")
	ErrInvalidPeriodKind  = errors.New("the budget period must be one of 'monthly', 'pay-period'")
	ErrInvalidFrequency   = errors.New("the contribution frequency must be one of 'weekly', 'bi-weekly', 'monthly', 'pay-period'")
	ErrInvalidAccountType = errors.New("the account type must be one of 'checking', 'savings', 'credit'")
)
