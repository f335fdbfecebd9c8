package store

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Env carries the external collaborators the machines schedule effects
// against. Both calls are fire-and-report: they run once and their result
// comes back into the issuing machine as a message.
type Env struct {
	FetchProducts func(ctx context.Context) ([]Product, error)
	SendOrder     func(ctx context.Context, items []CartItem) (string, error)
	Logger        *slog.Logger
}

// WithDefaults fills in a no-op logger so machines never have to nil-check.
func (e Env) WithDefaults() Env {
	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// money returns d formatted as a dollar amount rounded to two places.
// Internal values keep full precision; this is display-only rounding.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
