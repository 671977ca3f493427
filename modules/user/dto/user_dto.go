package dto

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=64"`
	Password *string `json:"password" validate:"omitempty,min=8,max=128"`
}
