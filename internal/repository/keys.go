package repository

// Session keys. The payment keys keep the names the web checkout used so
// a migrated store reads the same.
const (
	KeyPaymentPlan      = "astroveda_payment_plan"
	KeyPaymentID        = "astroveda_payment_id"
	KeyPaymentAmount    = "astroveda_payment_amount"
	KeyPaymentTimestamp = "astroveda_payment_timestamp"
	KeyProfile          = "astroveda_profile"
)

// PaymentKeys lists every key written when a plan is recorded.
var PaymentKeys = []string{KeyPaymentPlan, KeyPaymentID, KeyPaymentAmount, KeyPaymentTimestamp}
