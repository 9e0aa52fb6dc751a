package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/api"
	"github.com/alnah/go-lingua/internal/apierr"
	"github.com/alnah/go-lingua/internal/reconcile"
)

// ShopCmd creates the shop command with its subcommands.
func ShopCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and use the power-up shop",
		Example: `  lingua shop list
  lingua shop buy streak-freeze
  lingua shop use hint
  lingua shop activate xp-boost`,
	}

	cmd.AddCommand(shopListCmd(env))
	cmd.AddCommand(shopBuyCmd(env))
	cmd.AddCommand(shopUseCmd(env))
	cmd.AddCommand(shopActivateCmd(env))

	return cmd
}

func shopListCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the catalog and what you own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShopList(cmd, env)
		},
	}
}

// buyFuncs maps CLI power-up names to purchase operations.
var buyFuncs = map[string]func(*api.Client, context.Context) (reconcile.PurchaseResult, error){
	"streak-freeze": (*api.Client).BuyStreakFreeze,
	"xp-boost":      (*api.Client).BuyXPBoost,
	"hint-reveal":   (*api.Client).BuyHintReveal,
	"time-warp":     (*api.Client).BuyTimeWarp,
	"streak-repair": (*api.Client).BuyStreakRepair,
	"avatar-border": (*api.Client).BuyAvatarBorder,
	"premium-theme": (*api.Client).BuyPremiumTheme,
}

func shopBuyCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Purchase a power-up or shop item",
		Long: `Purchase a power-up or shop item with coins.

Items: streak-freeze, xp-boost, hint-reveal, time-warp,
streak-repair, avatar-border, premium-theme.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buy, ok := buyFuncs[args[0]]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownPowerUp, args[0])
			}
			return runShopBuy(cmd, env, buy)
		},
	}
}

func shopUseCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "use <hint|skip>",
		Short: "Consume an owned hint or skip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "hint":
				return runShopUse(cmd, env, (*api.Client).UseHint)
			case "skip":
				return runShopUse(cmd, env, (*api.Client).UseSkip)
			default:
				return fmt.Errorf("%w: %q (want hint or skip)", ErrUnknownPowerUp, args[0])
			}
		},
	}
}

func shopActivateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "activate xp-boost",
		Short: "Activate an owned 2x XP boost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "xp-boost" {
				return fmt.Errorf("%w: %q (only xp-boost can be activated)", ErrUnknownPowerUp, args[0])
			}
			return runShopBuy(cmd, env, (*api.Client).ActivateXPBoost)
		},
	}
}

// runShopList handles the shop list command.
func runShopList(cmd *cobra.Command, env *Env) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	inv, err := client.Inventory(cmd.Context())
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(inv.Catalog))
	for id := range inv.Catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(env.Stdout, "Coins: %d\n\n", inv.Coins)
	for _, id := range ids {
		item := inv.Catalog[id]
		fmt.Fprintf(env.Stdout, "%-16s %4d coins  owned %d/%d\n",
			item.DisplayName, item.Cost, inv.Owned[id], item.MaxStack)
	}
	return nil
}

// runShopBuy handles purchases and activations.
func runShopBuy(cmd *cobra.Command, env *Env, op func(*api.Client, context.Context) (reconcile.PurchaseResult, error)) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	result, err := op(client, cmd.Context())
	if err != nil {
		return err
	}

	printPurchase(env, result)
	return nil
}

// runShopUse handles hint and skip consumption. Using a hint or skip must not
// fail the surrounding lesson flow, so failures after the auth gate are
// reported on stderr without a non-zero exit.
func runShopUse(cmd *cobra.Command, env *Env, op func(*api.Client, context.Context) (reconcile.PurchaseResult, error)) error {
	client, err := newClient(env)
	if err != nil {
		return err
	}

	result, err := op(client, cmd.Context())
	if err != nil {
		var authErr *apierr.AuthError
		if errors.As(err, &authErr) {
			return err
		}
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
		return nil
	}

	printPurchase(env, result)
	return nil
}

func printPurchase(env *Env, r reconcile.PurchaseResult) {
	fmt.Fprintln(env.Stdout, r.Message)
	fmt.Fprintf(env.Stdout, "Coins remaining: %d\n", r.CoinsRemaining)
	if r.NewQuantity > 0 {
		fmt.Fprintf(env.Stdout, "You now have %d\n", r.NewQuantity)
	}
}
