package models

import "time"

// User is an authenticated account: placement-cell admins and students.
// Students may be linked to a Student record via EnrollmentNumber.
type User struct {
	ID               int64     `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	Password         string    `json:"-" db:"password"` // bcrypt hash, never serialized
	FullName         string    `json:"fullName" db:"full_name"`
	RoleType         RoleType  `json:"roleType" db:"role_type"`
	EnrollmentNumber *string   `json:"enrollmentNumber,omitempty" db:"enrollment_number"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// RefreshToken is an opaque refresh token issued alongside a JWT access token.
type RefreshToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
}
