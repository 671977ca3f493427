package dto

type CreateClubRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=128"`
	Location string `json:"location" validate:"required,min=1,max=256"`
}

type UpdateClubRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=128"`
	Location *string `json:"location" validate:"omitempty,min=1,max=256"`
}
