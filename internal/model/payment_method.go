package model

import "time"

// PaymentMethod is a manual payment channel (bank, e-wallet) offered at checkout.
type PaymentMethod struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	AccountNumber string    `json:"accountNumber" db:"account_number"`
	AccountName   string    `json:"accountName" db:"account_name"`
	QRCodeURL     string    `json:"qrCodeUrl" db:"qr_code_url"`
	Active        bool      `json:"active" db:"active"`
	SortOrder     int       `json:"sortOrder" db:"sort_order"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// PaymentMethodInput carries the admin-editable fields of a payment method.
// ID is taken from the path on update and ignored in the body.
type PaymentMethodInput struct {
	ID            string  `json:"id" validate:"omitempty,max=64"`
	Name          string  `json:"name" validate:"required"`
	AccountNumber string  `json:"accountNumber" validate:"required"`
	AccountName   string  `json:"accountName" validate:"required"`
	QRCodeURL     *string `json:"qrCodeUrl,omitempty"`
	Active        bool    `json:"active"`
	SortOrder     int     `json:"sortOrder" validate:"min=0"`
}
