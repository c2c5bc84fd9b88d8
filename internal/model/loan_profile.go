package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanProfileStatus represents the lifecycle state of a funding request.
type LoanProfileStatus string

const (
	LoanProfileStatusPending  LoanProfileStatus = "pending"
	LoanProfileStatusApproved LoanProfileStatus = "approved"
	LoanProfileStatusRejected LoanProfileStatus = "rejected"
)

// LoanProfile represents a borrower's funding request.
type LoanProfile struct {
	ID                    uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	UserID                uint              `json:"user_id" gorm:"not null;index"`
	PhotoURL              string            `json:"photo_url" gorm:"size:512"`
	Title                 string            `json:"title" gorm:"size:255;not null"`
	Description           string            `json:"description" gorm:"type:text"`
	BusinessType          string            `json:"business_type" gorm:"size:255"`
	LoanDurationMonths    int               `json:"loan_duration_months" gorm:"not null;default:12"`
	TotalAmountRequired   decimal.Decimal   `json:"total_amount_required" gorm:"type:decimal(10,2);not null"`
	DeadlineToReceiveLoan time.Time         `json:"deadline_to_receive_loan" gorm:"type:date;not null"`
	Status                LoanProfileStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *LoanProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
