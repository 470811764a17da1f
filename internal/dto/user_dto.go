package dto

type UpdateProfileRequest struct {
	FullName string  `json:"full_name,omitempty" validate:"omitempty,min=3"`
	Phone    *string `json:"phone,omitempty"`
}

type ListUsersResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}
