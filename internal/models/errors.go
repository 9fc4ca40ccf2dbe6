package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrTransactionAmountNegative = errors.New("transaction amounts must not be negative")
	ErrTransactionCategoryEmpty  = errors.New("transactions must have a category")
	ErrIncomeAmountNegative      = errors.New("income amounts must not be negative")
	ErrIncomeMonthNotUnique      = errors.New("you can not create multiple income records for the same month")
	ErrProfilePaydayInvalid      = errors.New("the payday must be a day of the month between 1 and 31")
	ErrProfileUserNotUnique      = errors.New("you can not create multiple profiles for the same user")
)
