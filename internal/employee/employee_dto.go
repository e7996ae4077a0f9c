package employee

type CreateEmployeeRequest struct {
	FullName                     string `json:"full_name" binding:"required"`
	Email                        string `json:"email" binding:"required,email"`
	MonthlyLeaveAllowanceMinutes int    `json:"monthly_leave_allowance_minutes"`
}

type UpdateEmployeeRequest struct {
	FullName                     *string `json:"full_name"`
	Email                        *string `json:"email" binding:"omitempty,email"`
	MonthlyLeaveAllowanceMinutes *int    `json:"monthly_leave_allowance_minutes"`
}

type EmployeeResponse struct {
	ID                           string `json:"id"`
	FullName                     string `json:"full_name"`
	Email                        string `json:"email"`
	MonthlyLeaveAllowanceMinutes int    `json:"monthly_leave_allowance_minutes"`
}
