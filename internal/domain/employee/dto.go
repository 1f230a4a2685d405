package employee

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	Name           string  `json:"name_employee"`
	RoleID         string  `json:"role_id"`
	RoleName       *string `json:"role_name,omitempty"`
	Active         bool    `json:"status_employee"`
}
