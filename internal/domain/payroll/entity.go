package payroll

// SalaryBreakdown is the monthly pay computation for one employee. Field
// names match the breakdown the payroll screens already consume.
type SalaryBreakdown struct {
	RegularHours  float64 `json:"regularHours"`
	OvertimeHours float64 `json:"overtimeHours"`
	TotalHours    float64 `json:"totalHours"`
	RegularPay    float64 `json:"regularPay"`
	OvertimePay   float64 `json:"overtimePay"`
	TotalPay      float64 `json:"totalPay"`
	Bonus         float64 `json:"bonus"`
	FinalTotal    float64 `json:"finalTotal"`
}
