package http

import (
	"github.com/WahidMubarrat/CarBhara/internal/identity"
)

// SignUpRequest is the payload for POST /api/auth/signup.
type SignUpRequest struct {
	Role        string  `json:"role" binding:"required"`
	FullName    string  `json:"fullname" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	Age         *int    `json:"age"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"companyName"`

	ProfilePicture *string `json:"profilePicture"`
}

// SignInRequest is the payload for POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload for PUT /api/users/profile.
type UpdateProfileRequest struct {
	FullName    string  `json:"fullname" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	Age         *int    `json:"age"`
	CompanyName *string `json:"companyName"`
}

// UserResponse is the shape of principal data returned by the API.
type UserResponse struct {
	ID             string  `json:"id"`
	Role           string  `json:"role"`
	FullName       string  `json:"fullname"`
	Email          string  `json:"email"`
	Age            *int    `json:"age,omitempty"`
	Address        *string `json:"address,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	CompanyName    *string `json:"companyName,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// NewUserResponse converts an identity.Profile to the API shape.
func NewUserResponse(p *identity.Profile) UserResponse {
	return UserResponse{
		ID:             p.ID,
		Role:           string(p.Role),
		FullName:       p.FullName,
		Email:          p.Email,
		Age:            p.Age,
		Address:        p.Address,
		Phone:          p.Phone,
		CompanyName:    p.CompanyName,
		ProfilePicture: p.ProfilePicture,
	}
}
