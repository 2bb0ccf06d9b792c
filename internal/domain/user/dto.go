package user

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserDTO struct {
	Name      string  `json:"name" binding:"required"`
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	Role      Role    `json:"role" binding:"required"`
	ProjectID *string `json:"project_id,omitempty"`
}

type UpdateUserDTO struct {
	Name      *string `json:"name,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
}
