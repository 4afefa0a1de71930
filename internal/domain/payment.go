package domain

import "time"

const PaymentProviderRazorpay = "razorpay"

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment records one confirmed gateway payment for a registration. A row is
// written only after the gateway itself reports the payment as captured for
// the claimed order; every financial field is taken from the gateway response.
type Payment struct {
	ID                int64         `gorm:"primaryKey" json:"id"`
	RegistrationID    int64         `gorm:"index;not null" json:"registration_id"`
	UserID            int64         `gorm:"index;not null" json:"user_id"`
	Amount            float64       `gorm:"not null" json:"amount"`
	Currency          string        `gorm:"type:varchar(8);not null" json:"currency"`
	Status            PaymentStatus `gorm:"type:varchar(20);index" json:"status"`
	Provider          string        `gorm:"type:varchar(20);not null" json:"provider"`
	RazorpayOrderID   string        `gorm:"type:varchar(64);index;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"razorpay_payment_id"`
	RazorpaySignature string        `gorm:"type:varchar(128)" json:"razorpay_signature,omitempty"`
	Receipt           string        `gorm:"type:varchar(64)" json:"receipt,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`

	Registration *Registration `json:"registration,omitempty" gorm:"foreignKey:RegistrationID"`
}

func (Payment) TableName() string { return "payments" }
