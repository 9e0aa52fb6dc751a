package reconcile

import (
	"encoding/json"

	"github.com/alnah/go-lingua/internal/apierr"
)

// PurchaseResult is the canonical outcome of any shop purchase or power-up
// use, regardless of which endpoint produced it.
type PurchaseResult struct {
	Message        string
	CoinsRemaining int
	NewQuantity    int
}

// defaultPurchaseMessage is used when the backend sends no message field.
const defaultPurchaseMessage = "Purchase successful"

// rawPurchase covers the purchase response shapes. Each purchase endpoint
// reports the post-purchase quantity under its own field name; exactly one of
// the quantity fields is expected per response.
type rawPurchase struct {
	Message        *string `json:"message"`
	CoinsRemaining *int    `json:"coins_remaining"`
	StreakFreezes  *int    `json:"streak_freezes"`
	XPBoosts       *int    `json:"xp_boosts"`
	HintsAvailable *int    `json:"hints_available"`
	SkipsAvailable *int    `json:"skips_available"`
}

// Purchase reconciles a raw purchase body into the canonical result. The new
// quantity is the first present of streak_freezes, xp_boosts,
// hints_available, skips_available, in that order; 0 if none are present.
func Purchase(body []byte) (PurchaseResult, error) {
	var raw rawPurchase
	if err := json.Unmarshal(body, &raw); err != nil {
		return PurchaseResult{}, &apierr.ServerError{
			Message: "malformed purchase response",
			Err:     err,
		}
	}

	message := defaultPurchaseMessage
	if raw.Message != nil && *raw.Message != "" {
		message = *raw.Message
	}

	return PurchaseResult{
		Message:        message,
		CoinsRemaining: intOrZero(raw.CoinsRemaining),
		NewQuantity:    firstInt(raw.StreakFreezes, raw.XPBoosts, raw.HintsAvailable, raw.SkipsAvailable),
	}, nil
}
