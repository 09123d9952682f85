package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign computes the gateway signature: hex HMAC-SHA256 of
// "order_id|payment_id" keyed with the account secret.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureVerifier is the trusted boundary a confirmation must pass
// before its tier is recorded.
type SignatureVerifier struct {
	secret string
	orders OrderStore
}

// NewSignatureVerifier creates a verifier for the account secret. Orders
// must be the store the checkout opened its orders in.
func NewSignatureVerifier(secret string, orders OrderStore) *SignatureVerifier {
	return &SignatureVerifier{secret: secret, orders: orders}
}

// Verify checks the signature, then binds the claimed tier and amount to
// the order checkout opened. The signature covers only the ids, so the
// order is the sole record of what was bought.
func (v *SignatureVerifier) Verify(ctx context.Context, c Confirmation) error {
	plan, err := PlanFor(c.Tier)
	if err != nil {
		return err
	}
	if v.secret == "" || c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		return ErrInvalidSignature
	}

	got, err := hex.DecodeString(c.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	want, _ := hex.DecodeString(Sign(v.secret, c.OrderID, c.PaymentID))
	if !hmac.Equal(got, want) {
		return ErrInvalidSignature
	}

	order, err := v.orders.FindOrder(ctx, c.OrderID)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrUnknownOrder, c.OrderID, err)
	}
	if order.Tier != c.Tier {
		return fmt.Errorf("%w: order is %s, confirmation claims %s", ErrOrderMismatch, order.Tier, c.Tier)
	}
	if !c.Amount.Equal(order.Amount) || !order.Amount.Equal(plan.Price) {
		return fmt.Errorf("%w: paid %s for order of %s, plan is %s", ErrAmountMismatch, c.Amount, order.Amount, plan.Price)
	}
	return nil
}
