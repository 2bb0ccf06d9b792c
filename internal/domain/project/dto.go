package project

type CreateProjectDTO struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location"`
	Status   *Status `json:"status,omitempty"`
}

type UpdateProjectDTO struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Status   *Status `json:"status,omitempty"`
}
