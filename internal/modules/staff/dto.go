package staff

type CreateEmployeeRequest struct {
	PersonID   int64  `json:"person_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required,max=20"`
	Salary     int64  `json:"salary" binding:"gte=0"`
	JobTitle   string `json:"job_title" binding:"required,max=100"`
}
