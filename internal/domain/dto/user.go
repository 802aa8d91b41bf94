package dto

type CreateUserRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	FullName   string  `json:"full_name" validate:"required"`
	Password   string  `json:"password" validate:"required,min=6"`
	Role       *string `json:"role" validate:"omitempty,oneof=resident expert emergency admin user mchs"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	IsVerified *bool   `json:"is_verified"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Role     *string `json:"role" validate:"omitempty,oneof=resident expert emergency admin user mchs"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type ListUsersFilter struct {
	Role   string `query:"role"`
	Search string `query:"search"`
}
