package dto

import "github.com/uniplace/placement-backend/internal/app/models"

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@university.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretPass!"`
}

// RegisterStudentRequest creates a student account bound to an enrollment number.
type RegisterStudentRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	FullName         string `json:"fullName" binding:"required"`
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a fresh token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse returns the issued token pair and the authenticated profile.
type TokenResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int64           `json:"expiresIn" example:"3600"`
	User         UserResponse    `json:"user"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID               int64           `json:"id"`
	Email            string          `json:"email"`
	FullName         string          `json:"fullName"`
	RoleType         models.RoleType `json:"roleType"`
	EnrollmentNumber *string         `json:"enrollmentNumber,omitempty"`
}

// NewUserResponse maps a user model to its public view.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		FullName:         u.FullName,
		RoleType:         u.RoleType,
		EnrollmentNumber: u.EnrollmentNumber,
	}
}
