package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lendcircle/internal/errors"
)

// TransactionStatus represents the processing state of a funding event.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusCompleted  TransactionStatus = "completed"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusRefunded   TransactionStatus = "refunded"
	TransactionStatusCanceled   TransactionStatus = "canceled"
	TransactionStatusOnHold     TransactionStatus = "on_hold"
	TransactionStatusChargeback TransactionStatus = "chargeback"
)

// Valid reports whether s is a known transaction status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed,
		TransactionStatusRefunded, TransactionStatusCanceled, TransactionStatusOnHold,
		TransactionStatusChargeback:
		return true
	}
	return false
}

// PaymentMethod represents how a funding transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodApplePay       PaymentMethod = "apple_pay"
	PaymentMethodGooglePay      PaymentMethod = "google_pay"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodCryptocurrency PaymentMethod = "cryptocurrency"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal,
		PaymentMethodApplePay, PaymentMethodGooglePay, PaymentMethodBankTransfer,
		PaymentMethodCash, PaymentMethodCryptocurrency:
		return true
	}
	return false
}

// Transaction records one funding event from a lender to a loan profile.
// Transactions are append-only evidence: they are never deleted, and only
// their status may change after creation.
type Transaction struct {
	ID            uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	LoanProfileID uuid.UUID         `json:"loan_profile_id" gorm:"type:char(36);not null;index"`
	LenderID      uint              `json:"lender_id" gorm:"not null;index"`
	Amount        decimal.Decimal   `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod     `json:"payment_method" gorm:"size:20;not null;default:'paypal'"`
	Status        TransactionStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
	// TransactionDate reflects the last time the record was written, not the
	// original creation time: it is refreshed on every save, including
	// status-only updates.
	TransactionDate time.Time `json:"transaction_date" gorm:"not null;index"`

	// Relations
	LoanProfile LoanProfile `json:"-" gorm:"foreignKey:LoanProfileID"`
	Lender      User        `json:"-" gorm:"foreignKey:LenderID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeSave rejects negative amounts and stamps the record with the write
// time. Runs on create and on every later update.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	if t.Amount.IsNegative() {
		return errors.ErrInvalidAmount
	}
	t.TransactionDate = time.Now().UTC()
	return nil
}

// BeforeDelete unconditionally blocks deletion. The ledger is append-only:
// no caller, including bulk operations routed through GORM, can remove a
// transaction once it has been written.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return errors.ErrImmutableRecord
}
