package domain

import (
	"fmt"
	"time"
)

// DonationType enumerates donation cadences.
type DonationType string

const (
	DonationTypeOneTime DonationType = "one_time"
	DonationTypeMonthly DonationType = "monthly"
	DonationTypeAnnual  DonationType = "annual"
)

// ParseDonationType decodes a donation type string, rejecting unknown values.
func ParseDonationType(s string) (DonationType, error) {
	switch DonationType(s) {
	case DonationTypeOneTime, DonationTypeMonthly, DonationTypeAnnual:
		return DonationType(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid donation type", ErrInvalidEnum, s)
}

// PaymentMethod enumerates accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
)

// ParsePaymentMethod decodes a payment method string, rejecting unknown values.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPaypal, PaymentMethodBankTransfer, PaymentMethodMobileMoney:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: %q is not a valid payment method", ErrInvalidEnum, s)
}

// Donation is a monetary contribution record. DonationDate is always set
// server-side on create and update; client-supplied dates are ignored.
type Donation struct {
	DonationID       int64
	UserID           *int64
	DonationType     DonationType
	Name             *string
	OrganisationName *string
	Amount           int64
	PaymentMethod    PaymentMethod
	DonationDate     time.Time
}
