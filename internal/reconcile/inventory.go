package reconcile

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

// PowerUp describes one purchasable item in the static catalog.
type PowerUp struct {
	DisplayName string `toml:"display-name"`
	Cost        int    `toml:"cost"`
	MaxStack    int    `toml:"max-stack"`
}

// Catalog maps canonical power-up IDs to their catalog entries.
type Catalog map[string]PowerUp

// PowerUpInventory is a derived view over CanonicalProgress plus the static
// catalog. It is never stored independently.
type PowerUpInventory struct {
	Coins   int
	Catalog Catalog
	Owned   map[string]int // catalog ID -> count, clamped to [0, MaxStack]
}

// progressFieldForCatalogID maps each catalog ID to the progress field that
// carries its count. perfect_protection -> hint_reveal is a real backend
// naming mismatch, not a typo; changing it is a behavioral change.
var progressFieldForCatalogID = map[string]string{
	"streak_freeze": fieldStreakFreezes,
	"xp_boost_2x":   fieldXPBoost2x,
	"hint_reveal":   fieldPerfectProtection,
	"time_warp":     fieldTimeWarp,
}

// Inventory builds the power-up inventory view from reconciled progress and a
// catalog. Counts are clamped to the catalog's stack bounds.
func Inventory(progress CanonicalProgress, catalog Catalog) PowerUpInventory {
	owned := make(map[string]int, len(catalog))
	for id, item := range catalog {
		count := progress.PowerUpCounts[progressFieldForCatalogID[id]]
		if count < 0 {
			count = 0
		}
		if count > item.MaxStack {
			count = item.MaxStack
		}
		owned[id] = count
	}

	return PowerUpInventory{
		Coins:   progress.Coins,
		Catalog: catalog,
		Owned:   owned,
	}
}

//go:embed catalog.toml
var rawCatalog []byte

var loadCatalog = sync.OnceValue(func() Catalog {
	var c Catalog
	if err := toml.Unmarshal(rawCatalog, &c); err != nil {
		panic(fmt.Sprintf("reconcile: embedded catalog.toml is invalid: %v", err))
	}
	return c
})

// DefaultCatalog returns the embedded static catalog.
func DefaultCatalog() Catalog {
	return loadCatalog()
}
