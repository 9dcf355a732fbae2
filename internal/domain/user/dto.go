package user

// UserResponse is the public view of a user. The credential hash is never
// serialized; build responses through ToResponse only.
type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   string  `json:"department,omitempty"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
	}
}
