package handlers

import (
	"github.com/yichun-tseng/snackshop/auth"
	"github.com/yichun-tseng/snackshop/billing"
	"github.com/yichun-tseng/snackshop/lifecycle"
	"github.com/yichun-tseng/snackshop/ordersync"
	"github.com/yichun-tseng/snackshop/prefs"
	"github.com/yichun-tseng/snackshop/printing"
)

// API bundles the engine components the HTTP layer exposes. Everything is
// injected at startup; handlers hold no ambient global state.
type API struct {
	Sync    *ordersync.Client
	Machine *lifecycle.Machine
	Billing *billing.Aggregator
	Trigger *printing.Trigger
	Prefs   *prefs.Store
	Gate    *auth.Gate
}
