package model

import "time"

// UserRole classifies what a user is allowed to do on the marketplace.
type UserRole string

const (
	RoleLender   UserRole = "lender"
	RoleBorrower UserRole = "borrower"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered account. Email is the login identity.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string   `json:"name" gorm:"size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole `json:"role" gorm:"size:20;not null;default:'borrower';index"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
	IsStaff      bool     `json:"is_staff" gorm:"default:false"`

	// Optional profile metadata.
	Country      string `json:"country,omitempty" gorm:"size:255"`
	City         string `json:"city,omitempty" gorm:"size:255"`
	BusinessName string `json:"business_name,omitempty" gorm:"size:255"`
	BusinessType string `json:"business_type,omitempty" gorm:"size:255"`
	Interests    string `json:"interests,omitempty" gorm:"type:text"`
	PhotoURL     string `json:"photo_url,omitempty" gorm:"size:512"`
	Story        string `json:"story,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	LoanProfiles []LoanProfile `json:"loan_profiles,omitempty" gorm:"foreignKey:UserID"`
}

// IsLender reports whether the user may initiate funding transactions.
func (u *User) IsLender() bool {
	return u.Role == RoleLender
}
