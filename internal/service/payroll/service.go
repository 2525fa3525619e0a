package payroll

import (
	"context"
	"fmt"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/payroll"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
)

// Pay policy. These figures are part of the payroll contract with the
// existing frontends, not tuning knobs.
const (
	regularMonthlyHours = 160.0
	overtimeMultiplier  = 1.5
	bonusThresholdHours = 200.0
	bonusRate           = 0.10
)

type PayrollServiceImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewPayrollService(timesheetService timesheet.TimesheetService) *PayrollServiceImpl {
	return &PayrollServiceImpl{timesheetService: timesheetService}
}

func (s *PayrollServiceImpl) CalculateSalary(ctx context.Context, employeeID string, year, month int, hourlyRate float64) (payroll.SalaryBreakdown, error) {
	totalHours, err := s.timesheetService.TotalHoursInMonth(ctx, employeeID, year, month)
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to total hours for month: %w", err)
	}

	regularHours := totalHours
	if regularHours > regularMonthlyHours {
		regularHours = regularMonthlyHours
	}
	overtimeHours := totalHours - regularMonthlyHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	regularPay := regularHours * hourlyRate
	overtimePay := overtimeHours * hourlyRate * overtimeMultiplier
	totalPay := regularPay + overtimePay

	var bonus float64
	if totalHours >= bonusThresholdHours {
		bonus = bonusRate * totalPay
	}

	return payroll.SalaryBreakdown{
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		TotalHours:    totalHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		TotalPay:      totalPay,
		Bonus:         bonus,
		FinalTotal:    totalPay + bonus,
	}, nil
}
