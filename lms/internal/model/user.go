package model

import "time"

type User struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	StudentID string    `json:"studentId" db:"student_id"`
	Role      string    `json:"role" db:"role"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Member is a user as shown to admins, without the credential.
type Member struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	StudentID     string    `json:"studentId" db:"student_id"`
	Role          string    `json:"role" db:"role"`
	Phone         string    `json:"phone" db:"phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	ActiveBorrows int       `json:"activeBorrows" db:"active_borrows"`
}

type SignupRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	StudentID string `json:"studentId" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=student admin"`
	Phone     string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	User      Member `json:"user"`
}

type ProfileInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
