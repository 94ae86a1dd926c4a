package services

import (
	"regexp"

	"unitsync-backend/internal/models"
)

var (
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	datePattern  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
)

// DeriveStatus maps a ledger entry's amounts and dates to its status.
// Dates are ISO strings compared lexicographically, never parsed; for
// YYYY-MM-DD values the string order and the calendar order coincide.
func DeriveStatus(amountDue, amountPaid float64, dueDate, today string) string {
	if amountPaid <= 0 {
		if dueDate < today {
			return models.LedgerStatusOverdue
		}
		return models.LedgerStatusUnpaid
	}
	if amountPaid < amountDue {
		return models.LedgerStatusPartial
	}
	return models.LedgerStatusPaid
}

// ValidMonth reports whether s is a YYYY-MM month string
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// ValidDate reports whether s is a YYYY-MM-DD date string
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// ValidPaymentMethod reports whether m is an accepted payment method
func ValidPaymentMethod(m string) bool {
	switch m {
	case models.PaymentMethodMpesa, models.PaymentMethodBank, models.PaymentMethodCash:
		return true
	}
	return false
}

// DueDateForMonth synthesizes the due date for a billing month, always the
// first of the month
func DueDateForMonth(month string) string {
	return month + "-01"
}
