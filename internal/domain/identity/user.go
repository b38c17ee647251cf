package identity

import (
	"strings"
	"time"

	"github.com/electrostore/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing
const bcryptCost = 12

// Role represents a user's authorization role
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether the role is a known role
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User represents a storefront account
type User struct {
	shared.BaseAggregateRoot
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'customer'"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new customer account with a hashed password
func NewUser(email, name, password string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Name:              name,
		PasswordHash:      string(hash),
		Role:              RoleCustomer,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangeRole updates the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 || !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	return nil
}
