package api

import (
	"context"
	"net/http"

	"github.com/alnah/go-lingua/internal/reconcile"
)

// Feature descriptions for the auth gate. These read as the object of
// "sign in to ..." in user-facing messages.
const (
	featureShop     = "use the power-up shop"
	featurePowerUps = "use power-ups"
)

// Inventory builds the power-up inventory view from the user's progress and
// the static catalog. Anonymous users get an empty inventory derived from
// the guest snapshot.
func (c *Client) Inventory(ctx context.Context) (reconcile.PowerUpInventory, error) {
	progress, err := c.Progress(ctx)
	if err != nil {
		return reconcile.PowerUpInventory{}, err
	}
	return reconcile.Inventory(progress, c.catalog), nil
}

// buy posts to one purchase endpoint after consulting the auth gate.
func (c *Client) buy(ctx context.Context, op, path string) (reconcile.PurchaseResult, error) {
	if err := c.gate.Require(featureShop); err != nil {
		return reconcile.PurchaseResult{}, err
	}
	return send(ctx, c, op, http.MethodPost, path, nil, reconcile.Purchase)
}

// BuyStreakFreeze purchases one streak freeze.
func (c *Client) BuyStreakFreeze(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy streak freeze", "/api/v1/progress/me/power-ups/streak-freeze/buy")
}

// BuyXPBoost purchases one 2x XP boost.
func (c *Client) BuyXPBoost(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy xp boost", "/api/v1/progress/me/power-ups/xp-boost/buy")
}

// BuyHintReveal purchases one hint reveal.
func (c *Client) BuyHintReveal(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy hint reveal", "/api/v1/progress/me/power-ups/hint-reveal/buy")
}

// BuyTimeWarp purchases one time warp.
func (c *Client) BuyTimeWarp(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy time warp", "/api/v1/progress/me/power-ups/time-warp/buy")
}

// BuyStreakRepair purchases a streak repair from the shop.
func (c *Client) BuyStreakRepair(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy streak repair", "/api/v1/progress/me/shop/streak-repair/buy")
}

// BuyAvatarBorder purchases an avatar border from the shop.
func (c *Client) BuyAvatarBorder(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy avatar border", "/api/v1/progress/me/shop/avatar-border/buy")
}

// BuyPremiumTheme purchases a premium theme from the shop.
func (c *Client) BuyPremiumTheme(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.buy(ctx, "buy premium theme", "/api/v1/progress/me/shop/premium-theme/buy")
}

// use posts to one power-up activation endpoint after consulting the gate.
func (c *Client) use(ctx context.Context, op, path string) (reconcile.PurchaseResult, error) {
	if err := c.gate.Require(featurePowerUps); err != nil {
		return reconcile.PurchaseResult{}, err
	}
	return send(ctx, c, op, http.MethodPost, path, nil, reconcile.Purchase)
}

// ActivateXPBoost activates an owned 2x XP boost.
func (c *Client) ActivateXPBoost(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.use(ctx, "activate xp boost", "/api/v1/progress/me/power-ups/xp-boost/activate")
}

// UseHint consumes one hint reveal.
func (c *Client) UseHint(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.use(ctx, "use hint", "/api/v1/progress/me/power-ups/hint/use")
}

// UseSkip consumes one skip.
func (c *Client) UseSkip(ctx context.Context) (reconcile.PurchaseResult, error) {
	return c.use(ctx, "use skip", "/api/v1/progress/me/power-ups/skip/use")
}
