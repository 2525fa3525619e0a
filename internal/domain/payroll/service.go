package payroll

import (
	"context"
)

type PayrollService interface {
	// CalculateSalary derives the breakdown from the time entry ledger.
	// It is a pure read: deterministic given the ledger contents.
	CalculateSalary(ctx context.Context, employeeID string, year, month int, hourlyRate float64) (SalaryBreakdown, error)
}
