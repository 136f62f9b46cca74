package employee

type RegisterRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required"`
	ManagerID *string `json:"manager_id"`
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:    e.ID.String(),
		Name:  e.Name,
		Email: e.Email,
		Role:  e.Role,
	}
	if e.ManagerID != nil {
		v := e.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
