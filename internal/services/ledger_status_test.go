package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name       string
		amountDue  float64
		amountPaid float64
		dueDate    string
		today      string
		want       string
	}{
		{"nothing paid before due date", 5000, 0, "2025-02-01", "2025-01-28", "unpaid"},
		{"nothing paid on due date", 5000, 0, "2025-02-01", "2025-02-01", "unpaid"},
		{"nothing paid after due date", 5000, 0, "2025-02-01", "2025-02-02", "overdue"},
		{"negative paid after due date", 5000, -100, "2025-02-01", "2025-03-15", "overdue"},
		{"partial payment", 5000, 3000, "2025-02-01", "2025-02-15", "partial"},
		{"partial ignores due date", 5000, 1, "2025-02-01", "2026-01-01", "partial"},
		{"exactly paid", 5000, 5000, "2025-02-01", "2025-02-15", "paid"},
		{"overpaid", 5000, 6000, "2025-02-01", "2025-02-15", "paid"},
		{"zero due with payment", 0, 100, "2025-02-01", "2025-02-15", "paid"},
		{"zero due nothing paid overdue", 0, 0, "2025-02-01", "2025-03-01", "overdue"},
		{"year boundary comparison", 5000, 0, "2024-12-31", "2025-01-01", "overdue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.amountDue, tt.amountPaid, tt.dueDate, tt.today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStatusIdempotent(t *testing.T) {
	first := DeriveStatus(5000, 3000, "2025-02-01", "2025-02-10")
	second := DeriveStatus(5000, 3000, "2025-02-01", "2025-02-10")
	assert.Equal(t, first, second)
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2025-02"))
	assert.True(t, ValidMonth("1999-12"))
	assert.False(t, ValidMonth("2025-13"))
	assert.False(t, ValidMonth("2025-00"))
	assert.False(t, ValidMonth("2025-2"))
	assert.False(t, ValidMonth("2025-02-01"))
	assert.False(t, ValidMonth(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-02-01"))
	assert.True(t, ValidDate("2025-12-31"))
	assert.False(t, ValidDate("2025-02-32"))
	assert.False(t, ValidDate("2025-02-00"))
	assert.False(t, ValidDate("2025-02"))
	assert.False(t, ValidDate("01-02-2025"))
}

func TestDueDateForMonth(t *testing.T) {
	assert.Equal(t, "2025-02-01", DueDateForMonth("2025-02"))
}
