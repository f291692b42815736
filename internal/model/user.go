package model

import "golang.org/x/crypto/bcrypt"

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserUnactive UserStatus = "UNACTIVE"
	UserBanned   UserStatus = "BANNED"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Name     string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Username string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required"`
	Email    string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Avatar   string     `gorm:"type:varchar(512)" json:"avatar"`
	Role     UserRole   `gorm:"type:varchar(20);default:'USER'" json:"role"`
	Status   UserStatus `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// CanMutate reports whether this user may perform write operations.
// Only active admins can edit; everyone else is read-only.
func (u *User) CanMutate() bool {
	return u.Role == RoleAdmin && u.Status == UserActive
}
