package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoanUpdateType classifies an update note on a loan profile.
type LoanUpdateType string

const (
	LoanUpdateTypeProgress  LoanUpdateType = "progress"
	LoanUpdateTypeMilestone LoanUpdateType = "milestone"
	LoanUpdateTypeRepayment LoanUpdateType = "repayment"
	LoanUpdateTypeGeneral   LoanUpdateType = "general"
)

// Valid reports whether u is a known update type.
func (u LoanUpdateType) Valid() bool {
	switch u {
	case LoanUpdateTypeProgress, LoanUpdateTypeMilestone,
		LoanUpdateTypeRepayment, LoanUpdateTypeGeneral:
		return true
	}
	return false
}

// LoanUpdate is an append-only informational note attached to a loan profile.
type LoanUpdate struct {
	ID            uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	LoanProfileID uuid.UUID      `json:"loan_profile_id" gorm:"type:char(36);not null;index"`
	UpdateType    LoanUpdateType `json:"update_type" gorm:"size:20;not null;default:'general'"`
	Body          string         `json:"body" gorm:"type:text;not null"`
	CreatedAt     time.Time      `json:"created_at"`

	// Relations
	LoanProfile LoanProfile `json:"-" gorm:"foreignKey:LoanProfileID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *LoanUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
