package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("the request contains invalid data")
	ErrResourceNotFound = errors.New("there is no")
	ErrStoreUnavailable = errors.New("there is a problem with the database connection")
)

// Expense errors
var (
	ErrAmountNotPositive   = fmt.Errorf("%w: the amount must be larger than zero", ErrValidation)
	ErrCategoryMissing     = fmt.Errorf("%w: a category must be set", ErrValidation)
	ErrCategoryNotExisting = fmt.Errorf("%w: the category does not exist", ErrValidation)
	ErrDateMissing         = fmt.Errorf("%w: a date must be set", ErrValidation)
	ErrPaymentModeInvalid  = fmt.Errorf("%w: the payment mode must be one of 'cash', 'upi', 'credit', 'other'", ErrValidation)
	ErrUserMissing         = fmt.Errorf("%w: the user is not set", ErrValidation)
)

// Budget errors
var (
	ErrBudgetAmountNegative = fmt.Errorf("%w: the budget amount must not be negative", ErrValidation)
	ErrCycleInvalid         = fmt.Errorf("%w: the budget cycle must be either 'monthly' or 'weekly'", ErrValidation)
)

// Profile errors
var (
	ErrIncomeNegative = fmt.Errorf("%w: the monthly income must not be negative", ErrValidation)
	ErrLocaleInvalid  = fmt.Errorf("%w: the locale is not supported, use one of 'en', 'te', 'hi'", ErrValidation)
)
